package restaurant

import (
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// Domain errors for menu item construction.
var (
	// ErrMenuItemNameIsRequired is returned when attempting to create a menu item without a name.
	ErrMenuItemNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCategoryIsRequired is returned when attempting to create a menu item without a category.
	ErrCategoryIsRequired = errs.NewValueIsRequiredError("category")
	// ErrMenuItemIsNotConstructed is returned when using an improperly initialized MenuItem.
	ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem constructor")
)

// MenuItem represents a dish offered by exactly one restaurant.
// At order-creation time the item's current state (name, price) is
// snapshotted into the order's line items, so later menu edits do not
// retroactively affect past orders.
//
// Invariants:
//   - Must have a valid identifier and a valid restaurant identifier
//   - Name and category are non-empty; description may be empty
//   - Price is non-negative
type MenuItem struct {
	id           kernel.ID
	restaurantID kernel.ID
	name         string
	description  string
	price        float64
	category     string
	isAvailable  bool

	guard guard.ConstructorGuard
}

// NewMenuItem creates a new available MenuItem for the given restaurant.
func NewMenuItem(id, restaurantID kernel.ID, name, description string, price float64, category string) (*MenuItem, error) {
	return RestoreMenuItem(id, restaurantID, name, description, price, category, true)
}

// RestoreMenuItem reconstructs a MenuItem from persistent storage,
// including its availability flag.
func RestoreMenuItem(
	id, restaurantID kernel.ID,
	name, description string,
	price float64,
	category string,
	isAvailable bool,
) (*MenuItem, error) {
	m := &MenuItem{
		description: description,
		isAvailable: isAvailable,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setID(id),
		m.setRestaurantID(restaurantID),
		m.setName(name),
		m.setPrice(price),
		m.setCategory(category),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// Validate ensures the MenuItem instance was properly constructed.
func (m *MenuItem) Validate() error {
	if m == nil {
		return ErrMenuItemIsNotConstructed
	}
	return m.guard.Validate(ErrMenuItemIsNotConstructed)
}

// IsEqual compares two menu items by their unique identifiers.
func (m *MenuItem) IsEqual(other *MenuItem) bool {
	return other != nil && m.id.IsEqual(other.id)
}

// ID returns the menu item's unique identifier.
func (m *MenuItem) ID() kernel.ID {
	return m.id
}

// RestaurantID returns the identifier of the owning restaurant.
func (m *MenuItem) RestaurantID() kernel.ID {
	return m.restaurantID
}

// Name returns the dish name.
func (m *MenuItem) Name() string {
	return m.name
}

// Description returns the dish description. May be empty.
func (m *MenuItem) Description() string {
	return m.description
}

// Price returns the current unit price.
func (m *MenuItem) Price() float64 {
	return m.price
}

// Category returns the menu category, e.g. "Pizza".
func (m *MenuItem) Category() string {
	return m.category
}

// IsAvailable reports whether the item can currently be ordered.
func (m *MenuItem) IsAvailable() bool {
	return m.isAvailable
}

func (m *MenuItem) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *MenuItem) setRestaurantID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.restaurantID = id
	return nil
}

func (m *MenuItem) setName(name string) error {
	if name == "" {
		return ErrMenuItemNameIsRequired
	}
	m.name = name
	return nil
}

func (m *MenuItem) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%g is negative", price))
	}
	m.price = price
	return nil
}

func (m *MenuItem) setCategory(category string) error {
	if category == "" {
		return ErrCategoryIsRequired
	}
	m.category = category
	return nil
}
