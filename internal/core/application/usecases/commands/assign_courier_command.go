package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrAssignCourierCommandIsNotConstructed = errors.New(
	"AssignCourierCommand must be created via NewAssignCourierCommand constructor",
)

// AssignCourierCommand represents a request to manually assign a specific
// courier to an order, replacing any courier already on it.
type AssignCourierCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.ID
	courierID kernel.ID

	guard guard.ConstructorGuard
}

// NewAssignCourierCommand creates a command to assign a courier to an order.
// Returns an error if either identifier is invalid.
func NewAssignCourierCommand(orderID, courierID kernel.ID) (AssignCourierCommand, error) {
	if err := errors.Join(orderID.Validate(), courierID.Validate()); err != nil {
		return AssignCourierCommand{}, err
	}

	return AssignCourierCommand{
		orderID:   orderID,
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignCourierCommandIsNotConstructed if validation fails.
func (c AssignCourierCommand) Validate() error {
	return c.guard.Validate(ErrAssignCourierCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being assigned.
func (c AssignCourierCommand) OrderID() kernel.ID {
	return c.orderID
}

// CourierID returns the identifier of the courier to assign.
func (c AssignCourierCommand) CourierID() kernel.ID {
	return c.courierID
}
