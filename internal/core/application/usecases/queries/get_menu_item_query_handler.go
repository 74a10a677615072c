package queries

import (
	"context"
	"database/sql"
	"errors"

	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetMenuItemQueryHandler retrieves a single menu item from the database.
// Unlike the menu listing, direct lookup also returns sold-out items so
// clients can show them as unavailable.
type GetMenuItemQueryHandler struct {
	db *gorm.DB
}

// NewGetMenuItemQueryHandler creates a handler for menu item lookups.
// Requires a GORM database connection for query execution.
func NewGetMenuItemQueryHandler(db *gorm.DB) GetMenuItemQueryHandler {
	return GetMenuItemQueryHandler{db: db}
}

// Handle executes the query to retrieve a menu item by ID.
// Returns an object-not-found error if no menu item has the requested ID.
func (h GetMenuItemQueryHandler) Handle(ctx context.Context, query GetMenuItemQuery) (MenuItemResponse, error) {
	if err := query.Validate(); err != nil {
		return MenuItemResponse{}, err
	}

	var resp MenuItemResponse
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			restaurant_id,
			name,
			description,
			price,
			category,
			is_available
		FROM menu_items
		WHERE id = ?
	`, query.MenuItemID().String()).Row()

	err := row.Scan(
		&resp.ID, &resp.RestaurantID, &resp.Name, &resp.Description,
		&resp.Price, &resp.Category, &resp.IsAvailable)
	if errors.Is(err, sql.ErrNoRows) {
		return MenuItemResponse{}, errs.NewObjectNotFoundError("menuItemId", query.MenuItemID().String())
	}
	if err != nil {
		return MenuItemResponse{}, err
	}

	return resp, nil
}
