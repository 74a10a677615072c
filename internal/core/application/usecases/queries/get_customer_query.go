// Package queries contains read-only operations for retrieving system state.
// Implements the Query side of the CQRS architecture: handlers read straight
// from the database with raw SQL and return plain response structs, bypassing
// the domain aggregates.
package queries

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetCustomerQueryIsNotConstructed = errors.New(
	"GetCustomerQuery must be created via NewGetCustomerQuery constructor",
)

// GetCustomerQuery retrieves a single customer profile by ID.
type GetCustomerQuery struct {
	customerID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetCustomerQuery creates a query for a customer profile.
// Returns an error if the customer ID is invalid.
func NewGetCustomerQuery(customerID kernel.ID) (GetCustomerQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerQuery{}, err
	}

	return GetCustomerQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCustomerQueryIsNotConstructed if validation fails.
func (q GetCustomerQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerQueryIsNotConstructed)
}

// CustomerID returns the identifier of the requested customer.
func (q GetCustomerQuery) CustomerID() kernel.ID {
	return q.customerID
}

// CustomerResponse represents a customer profile as stored.
type CustomerResponse struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
}
