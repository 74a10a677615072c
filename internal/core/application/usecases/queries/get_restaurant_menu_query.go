package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetRestaurantMenuQueryIsNotConstructed = errors.New(
	"GetRestaurantMenuQuery must be created via NewGetRestaurantMenuQuery constructor",
)

// GetRestaurantMenuQuery retrieves the available menu of one restaurant,
// optionally narrowed to a single category.
type GetRestaurantMenuQuery struct {
	restaurantID kernel.ID
	category     string

	guard guard.ConstructorGuard
}

// NewGetRestaurantMenuQuery creates a query for a restaurant's menu.
// An empty category means every category.
// Returns an error if the restaurant ID is invalid.
func NewGetRestaurantMenuQuery(restaurantID kernel.ID, category string) (GetRestaurantMenuQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetRestaurantMenuQuery{}, err
	}

	return GetRestaurantMenuQuery{
		restaurantID: restaurantID,
		category:     category,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetRestaurantMenuQueryIsNotConstructed if validation fails.
func (q GetRestaurantMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantMenuQueryIsNotConstructed)
}

// RestaurantID returns the identifier of the restaurant whose menu is requested.
func (q GetRestaurantMenuQuery) RestaurantID() kernel.ID {
	return q.restaurantID
}

// Category returns the category filter, or the empty string when unfiltered.
func (q GetRestaurantMenuQuery) Category() string {
	return q.category
}

// MenuItemResponse represents a single dish on a restaurant's menu.
type MenuItemResponse struct {
	ID           string
	RestaurantID string
	Name         string
	Description  string
	Price        float64
	Category     string
	IsAvailable  bool
}
