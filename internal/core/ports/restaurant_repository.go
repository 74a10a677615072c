package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/restaurant"
)

// RestaurantRepository defines the persistence contract for restaurants
// and their menu items.
type RestaurantRepository interface {
	// Add persists a new restaurant.
	Add(ctx context.Context, r *restaurant.Restaurant) error

	// Get retrieves a restaurant by its unique identifier.
	// Returns an object-not-found error if the restaurant does not exist.
	Get(ctx context.Context, id kernel.ID) (*restaurant.Restaurant, error)

	// AddMenuItem persists a new menu item for a restaurant.
	AddMenuItem(ctx context.Context, item *restaurant.MenuItem) error

	// GetMenuItem retrieves a menu item by its unique identifier.
	// Returns an object-not-found error if the item does not exist.
	GetMenuItem(ctx context.Context, id kernel.ID) (*restaurant.MenuItem, error)
}
