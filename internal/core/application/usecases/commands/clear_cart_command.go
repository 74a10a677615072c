package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrClearCartCommandIsNotConstructed = errors.New(
	"ClearCartCommand must be created via NewClearCartCommand constructor",
)

// ClearCartCommand represents a request to empty a customer's cart.
type ClearCartCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.ID

	guard guard.ConstructorGuard
}

// NewClearCartCommand creates a command to clear a customer's cart.
// Returns an error if the customer ID is invalid.
func NewClearCartCommand(customerID kernel.ID) (ClearCartCommand, error) {
	if err := customerID.Validate(); err != nil {
		return ClearCartCommand{}, err
	}

	return ClearCartCommand{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrClearCartCommandIsNotConstructed if validation fails.
func (c ClearCartCommand) Validate() error {
	return c.guard.Validate(ErrClearCartCommandIsNotConstructed)
}

// CustomerID returns the identifier of the cart owner.
func (c ClearCartCommand) CustomerID() kernel.ID {
	return c.customerID
}
