// Package cartrepo provides data transfer objects and mapping functions for
// cart persistence. A cart row exists per customer with child item rows;
// item rows keep their insertion order so the cart reads back as built.
package cartrepo

import (
	"fooddelivery/internal/core/domain/model/cart"
	"fooddelivery/internal/core/domain/model/kernel"
)

// CartDTO represents the database structure for persisting carts.
type CartDTO struct {
	CustomerID string        `gorm:"primaryKey"`
	Items      []CartItemDTO `gorm:"foreignKey:CartCustomerID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for cart entities.
func (CartDTO) TableName() string {
	return "carts"
}

// CartItemDTO represents one cart entry. The surrogate ID preserves the
// order entries were added in.
type CartItemDTO struct {
	ID             uint   `gorm:"primaryKey;autoIncrement"`
	CartCustomerID string `gorm:"index"`
	MenuItemID     string
	Quantity       int
}

// TableName specifies the database table name for cart item entities.
func (CartItemDTO) TableName() string {
	return "cart_items"
}

// fromDomain converts a cart domain aggregate to its database representation.
func fromDomain(c *cart.Cart) CartDTO {
	items := make([]CartItemDTO, 0, len(c.Items()))
	for _, item := range c.Items() {
		items = append(items, CartItemDTO{
			CartCustomerID: c.CustomerID().String(),
			MenuItemID:     item.MenuItemID().String(),
			Quantity:       item.Quantity(),
		})
	}

	return CartDTO{
		CustomerID: c.CustomerID().String(),
		Items:      items,
	}
}

// toDomain converts a database DTO to a cart domain aggregate.
func toDomain(dto CartDTO) (*cart.Cart, error) {
	customerID, err := kernel.IDFromString(dto.CustomerID)
	if err != nil {
		return nil, err
	}

	items := make([]cart.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		menuItemID, idErr := kernel.IDFromString(itemDTO.MenuItemID)
		if idErr != nil {
			return nil, idErr
		}

		item, itemErr := cart.NewItem(menuItemID, itemDTO.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return cart.RestoreCart(customerID, items)
}
