package queries

import (
	"errors"

	"fooddelivery/internal/pkg/guard"
)

var ErrGetRestaurantsQueryIsNotConstructed = errors.New(
	"GetRestaurantsQuery must be created via NewGetRestaurantsQuery constructor",
)

// GetRestaurantsQuery retrieves restaurants, optionally narrowed by cuisine.
// Listing defaults to restaurants currently accepting orders; pass
// isActive=false to list the suspended ones instead.
//
// Example:
//
//	query := NewGetRestaurantsQuery("Italian", true)
//	handler := NewGetRestaurantsQueryHandler(db)
//
//	restaurants, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list restaurants: %w", err)
//	}
//	fmt.Printf("%d restaurants open\n", len(restaurants))
type GetRestaurantsQuery struct {
	cuisine  string
	isActive bool

	guard guard.ConstructorGuard
}

// NewGetRestaurantsQuery creates a query to list restaurants.
// An empty cuisine means every cuisine.
func NewGetRestaurantsQuery(cuisine string, isActive bool) GetRestaurantsQuery {
	return GetRestaurantsQuery{
		cuisine:  cuisine,
		isActive: isActive,
		guard:    guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetRestaurantsQueryIsNotConstructed if validation fails.
func (q GetRestaurantsQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantsQueryIsNotConstructed)
}

// Cuisine returns the cuisine filter, or the empty string when unfiltered.
func (q GetRestaurantsQuery) Cuisine() string {
	return q.cuisine
}

// IsActive reports whether active or suspended restaurants are requested.
func (q GetRestaurantsQuery) IsActive() bool {
	return q.isActive
}

// RestaurantResponse represents a restaurant listing entry.
type RestaurantResponse struct {
	ID           string
	Name         string
	Cuisine      string
	DeliveryTime string
	Rating       float64
	IsActive     bool
	Address      string
}
