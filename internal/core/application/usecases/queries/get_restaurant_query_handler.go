package queries

import (
	"context"
	"database/sql"
	"errors"

	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetRestaurantQueryHandler retrieves a single restaurant from the database.
type GetRestaurantQueryHandler struct {
	db *gorm.DB
}

// NewGetRestaurantQueryHandler creates a handler for restaurant lookups.
// Requires a GORM database connection for query execution.
func NewGetRestaurantQueryHandler(db *gorm.DB) GetRestaurantQueryHandler {
	return GetRestaurantQueryHandler{db: db}
}

// Handle executes the query to retrieve a restaurant by ID.
// Returns an object-not-found error if no restaurant has the requested ID.
func (h GetRestaurantQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantQuery,
) (RestaurantResponse, error) {
	if err := query.Validate(); err != nil {
		return RestaurantResponse{}, err
	}

	var resp RestaurantResponse
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			cuisine,
			delivery_time,
			rating,
			is_active,
			address
		FROM restaurants
		WHERE id = ?
	`, query.RestaurantID().String()).Row()

	err := row.Scan(
		&resp.ID, &resp.Name, &resp.Cuisine, &resp.DeliveryTime,
		&resp.Rating, &resp.IsActive, &resp.Address)
	if errors.Is(err, sql.ErrNoRows) {
		return RestaurantResponse{}, errs.NewObjectNotFoundError("restaurantId", query.RestaurantID().String())
	}
	if err != nil {
		return RestaurantResponse{}, err
	}

	return resp, nil
}
