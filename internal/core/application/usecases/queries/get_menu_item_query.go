package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetMenuItemQueryIsNotConstructed = errors.New(
	"GetMenuItemQuery must be created via NewGetMenuItemQuery constructor",
)

// GetMenuItemQuery retrieves a single menu item by ID.
type GetMenuItemQuery struct {
	menuItemID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetMenuItemQuery creates a query for a menu item.
// Returns an error if the menu item ID is invalid.
func NewGetMenuItemQuery(menuItemID kernel.ID) (GetMenuItemQuery, error) {
	if err := menuItemID.Validate(); err != nil {
		return GetMenuItemQuery{}, err
	}

	return GetMenuItemQuery{
		menuItemID: menuItemID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetMenuItemQueryIsNotConstructed if validation fails.
func (q GetMenuItemQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuItemQueryIsNotConstructed)
}

// MenuItemID returns the identifier of the requested menu item.
func (q GetMenuItemQuery) MenuItemID() kernel.ID {
	return q.menuItemID
}
