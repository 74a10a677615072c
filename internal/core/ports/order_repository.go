package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order with its line-item snapshots.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order (status, courier).
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its unique identifier.
	// Returns an object-not-found error if the order does not exist.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// GetFirstUnassignedPending retrieves the oldest pending order that has
	// no courier assigned. Used by the background dispatch job.
	// Returns an object-not-found error when no such order exists.
	GetFirstUnassignedPending(ctx context.Context) (*order.Order, error)
}
