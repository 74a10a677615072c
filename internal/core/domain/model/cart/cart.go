// Package cart contains the Cart aggregate: a per-customer transient holding
// area for prospective order line items. A cart is created on the first item
// addition and destroyed when an order is created from it or it is explicitly
// cleared.
package cart

import (
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// Domain errors for cart operations.
var (
	// ErrCartIsNotConstructed is returned when using an improperly initialized Cart.
	ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart constructor")
)

// Item is a (menu item, quantity) pair held in a cart.
// Items reference menu items by ID only; prices are resolved and
// snapshotted at order-creation time.
type Item struct {
	menuItemID kernel.ID
	quantity   int
}

// NewItem creates a cart item. Quantity must be at least 1.
func NewItem(menuItemID kernel.ID, quantity int) (Item, error) {
	if err := menuItemID.Validate(); err != nil {
		return Item{}, err
	}
	if quantity < 1 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is less than 1", quantity))
	}
	return Item{menuItemID: menuItemID, quantity: quantity}, nil
}

// MenuItemID returns the referenced menu item's identifier.
func (i Item) MenuItemID() kernel.ID {
	return i.menuItemID
}

// Quantity returns the requested quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// Cart holds a customer's prospective order lines.
// The customer identifier is the cart's key: each customer has at most one
// cart. Additions append; the same menu item may appear on several lines,
// matching checkout behavior where each add is its own line.
type Cart struct {
	customerID kernel.ID
	items      []Item

	guard guard.ConstructorGuard
}

// NewCart creates an empty cart for the given customer.
func NewCart(customerID kernel.ID) (*Cart, error) {
	return RestoreCart(customerID, nil)
}

// RestoreCart reconstructs a cart with its items from persistent storage.
func RestoreCart(customerID kernel.ID, items []Item) (*Cart, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	return &Cart{
		customerID: customerID,
		items:      items,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Cart instance was properly constructed.
func (c *Cart) Validate() error {
	if c == nil {
		return ErrCartIsNotConstructed
	}
	return c.guard.Validate(ErrCartIsNotConstructed)
}

// CustomerID returns the owning customer's identifier.
func (c *Cart) CustomerID() kernel.ID {
	return c.customerID
}

// Items returns the cart's line items in insertion order.
func (c *Cart) Items() []Item {
	return c.items
}

// IsEmpty reports whether the cart holds no items.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// AddItem appends a line for the given menu item.
// Quantity must be at least 1. Lines are never merged.
func (c *Cart) AddItem(menuItemID kernel.ID, quantity int) error {
	item, err := NewItem(menuItemID, quantity)
	if err != nil {
		return err
	}

	c.items = append(c.items, item)
	return nil
}

// Clear removes all items from the cart.
func (c *Cart) Clear() {
	c.items = nil
}
