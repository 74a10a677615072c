package order

import (
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// LineItem is a snapshot of a menu item taken at order-creation time,
// together with the ordered quantity and the computed line subtotal.
// Later menu price changes never affect a persisted line item.
type LineItem struct {
	menuItemID kernel.ID
	name       string
	unitPrice  float64
	quantity   int
	subtotal   float64
}

// NewLineItem snapshots a menu item into an order line.
// The subtotal is computed as unitPrice multiplied by quantity.
func NewLineItem(menuItemID kernel.ID, name string, unitPrice float64, quantity int) (LineItem, error) {
	if err := menuItemID.Validate(); err != nil {
		return LineItem{}, err
	}
	if name == "" {
		return LineItem{}, errs.NewValueIsRequiredError("name")
	}
	if unitPrice < 0 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("%g is negative", unitPrice))
	}
	if quantity < 1 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is less than 1", quantity))
	}

	return LineItem{
		menuItemID: menuItemID,
		name:       name,
		unitPrice:  unitPrice,
		quantity:   quantity,
		subtotal:   unitPrice * float64(quantity),
	}, nil
}

// RestoreLineItem reconstructs a line item from persistent storage,
// preserving the stored subtotal as-is.
func RestoreLineItem(menuItemID kernel.ID, name string, unitPrice float64, quantity int, subtotal float64) (LineItem, error) {
	item, err := NewLineItem(menuItemID, name, unitPrice, quantity)
	if err != nil {
		return LineItem{}, err
	}
	item.subtotal = subtotal
	return item, nil
}

// MenuItemID returns the snapshotted menu item's identifier.
func (li LineItem) MenuItemID() kernel.ID {
	return li.menuItemID
}

// Name returns the snapshotted dish name.
func (li LineItem) Name() string {
	return li.name
}

// UnitPrice returns the price per unit at order-creation time.
func (li LineItem) UnitPrice() float64 {
	return li.unitPrice
}

// Quantity returns the ordered quantity.
func (li LineItem) Quantity() int {
	return li.quantity
}

// Subtotal returns unit price multiplied by quantity.
func (li LineItem) Subtotal() float64 {
	return li.subtotal
}
