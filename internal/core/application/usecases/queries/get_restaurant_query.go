package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetRestaurantQueryIsNotConstructed = errors.New(
	"GetRestaurantQuery must be created via NewGetRestaurantQuery constructor",
)

// GetRestaurantQuery retrieves a single restaurant by ID.
type GetRestaurantQuery struct {
	restaurantID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetRestaurantQuery creates a query for a restaurant.
// Returns an error if the restaurant ID is invalid.
func NewGetRestaurantQuery(restaurantID kernel.ID) (GetRestaurantQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetRestaurantQuery{}, err
	}

	return GetRestaurantQuery{
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetRestaurantQueryIsNotConstructed if validation fails.
func (q GetRestaurantQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantQueryIsNotConstructed)
}

// RestaurantID returns the identifier of the requested restaurant.
func (q GetRestaurantQuery) RestaurantID() kernel.ID {
	return q.restaurantID
}
