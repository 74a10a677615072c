package queries

import (
	"context"
	"database/sql"
	"errors"

	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetRestaurantMenuQueryHandler lists the currently available dishes of a
// restaurant. Sold-out items are hidden from the menu but remain reachable
// by direct ID lookup.
type GetRestaurantMenuQueryHandler struct {
	db *gorm.DB
}

// NewGetRestaurantMenuQueryHandler creates a handler for menu queries.
// Requires a GORM database connection for query execution.
func NewGetRestaurantMenuQueryHandler(db *gorm.DB) GetRestaurantMenuQueryHandler {
	return GetRestaurantMenuQueryHandler{db: db}
}

// Handle executes the query to list a restaurant's available menu items.
// Returns an object-not-found error if the restaurant does not exist; a
// restaurant with no available items yields an empty slice.
func (h GetRestaurantMenuQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantMenuQuery,
) ([]MenuItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var restaurantID string
	row := h.db.WithContext(ctx).Raw(`
		SELECT id FROM restaurants WHERE id = ?
	`, query.RestaurantID().String()).Row()
	if err := row.Scan(&restaurantID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewObjectNotFoundError("restaurantId", query.RestaurantID().String())
		}
		return nil, err
	}

	where := "restaurant_id = ? AND is_available"
	args := []any{query.RestaurantID().String()}
	if query.Category() != "" {
		where += " AND category = ?"
		args = append(args, query.Category())
	}

	items := make([]MenuItemResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			restaurant_id,
			name,
			description,
			price,
			category,
			is_available
		FROM menu_items
		WHERE `+where+`
		ORDER BY category, name
	`, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp MenuItemResponse
		if err = rows.Scan(
			&resp.ID,
			&resp.RestaurantID,
			&resp.Name,
			&resp.Description,
			&resp.Price,
			&resp.Category,
			&resp.IsAvailable,
		); err != nil {
			return nil, err
		}
		items = append(items, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
