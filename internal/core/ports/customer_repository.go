// Package ports defines repository and unit-of-work interfaces for the
// food-delivery domain. These interfaces establish contracts between the
// domain layer and infrastructure, enabling dependency inversion and
// testability.
package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/customer"
	"fooddelivery/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer entities.
type CustomerRepository interface {
	// Add persists a new customer.
	// Returns a duplicate error if the ID or email is already taken.
	Add(ctx context.Context, c *customer.Customer) error

	// Get retrieves a customer by its unique identifier.
	// Returns an object-not-found error if the customer does not exist.
	Get(ctx context.Context, id kernel.ID) (*customer.Customer, error)
}
