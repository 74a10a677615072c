package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetRestaurantsQueryHandler lists restaurants from the database.
// Inactive restaurants are hidden from the default listing but remain
// reachable by direct ID lookup.
type GetRestaurantsQueryHandler struct {
	db *gorm.DB
}

// NewGetRestaurantsQueryHandler creates a handler for restaurant listings.
// Requires a GORM database connection for query execution.
func NewGetRestaurantsQueryHandler(db *gorm.DB) GetRestaurantsQueryHandler {
	return GetRestaurantsQueryHandler{db: db}
}

// Handle executes the query to list restaurants matching the filters.
// Results are sorted by name for consistent output.
func (h GetRestaurantsQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantsQuery,
) ([]RestaurantResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	where := "is_active = ?"
	args := []any{query.IsActive()}
	if query.Cuisine() != "" {
		where += " AND cuisine = ?"
		args = append(args, query.Cuisine())
	}

	restaurants := make([]RestaurantResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			cuisine,
			delivery_time,
			rating,
			is_active,
			address
		FROM restaurants
		WHERE `+where+`
		ORDER BY name
	`, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp RestaurantResponse
		if err = rows.Scan(
			&resp.ID,
			&resp.Name,
			&resp.Cuisine,
			&resp.DeliveryTime,
			&resp.Rating,
			&resp.IsActive,
			&resp.Address,
		); err != nil {
			return nil, err
		}
		restaurants = append(restaurants, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return restaurants, nil
}
