package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for courier aggregates.
type CourierRepository interface {
	// Add persists a new courier.
	// Returns a duplicate error if the ID is already taken.
	Add(ctx context.Context, c *courier.Courier) error

	// Update persists changes to an existing courier.
	Update(ctx context.Context, c *courier.Courier) error

	// Get retrieves a courier by its unique identifier.
	// Returns an object-not-found error if the courier does not exist.
	Get(ctx context.Context, id kernel.ID) (*courier.Courier, error)

	// GetAllAvailable retrieves all couriers currently in available status.
	// Used by the best-effort assignment during order creation and by the
	// background dispatch job. Order of results is the storage order; the
	// selection policy decides which candidate wins.
	GetAllAvailable(ctx context.Context) ([]*courier.Courier, error)
}
