// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. Implements the repository pattern for the order
// aggregate; line items are stored as child rows snapshotted at placement.
package orderrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting orders.
// Status and courier assignment are indexed for the dispatch scan.
type OrderDTO struct {
	ID                    string         `gorm:"primaryKey"`
	CustomerID            string         `gorm:"index"`
	RestaurantID          string         `gorm:"index"`
	CourierID             *string        `gorm:"index"`
	Items                 []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	TotalAmount           float64
	Status                string         `gorm:"index"`
	DeliveryAddress       string
	CreatedAt             time.Time      `gorm:"index"`
	EstimatedDeliveryTime string
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one order line item with its price snapshot.
type OrderItemDTO struct {
	ID         uint   `gorm:"primaryKey;autoIncrement"`
	OrderID    string `gorm:"index"`
	MenuItemID string
	Name       string
	UnitPrice  float64
	Quantity   int
	Subtotal   float64
}

// TableName specifies the database table name for order item entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including optional courier assignment.
func fromDomain(o *order.Order) OrderDTO {
	var courierID *string
	if id := o.CourierID(); id != nil {
		raw := id.String()
		courierID = &raw
	}

	items := make([]OrderItemDTO, 0, len(o.LineItems()))
	for _, li := range o.LineItems() {
		items = append(items, OrderItemDTO{
			OrderID:    o.ID().String(),
			MenuItemID: li.MenuItemID().String(),
			Name:       li.Name(),
			UnitPrice:  li.UnitPrice(),
			Quantity:   li.Quantity(),
			Subtotal:   li.Subtotal(),
		})
	}

	return OrderDTO{
		ID:                    o.ID().String(),
		CustomerID:            o.CustomerID().String(),
		RestaurantID:          o.RestaurantID().String(),
		CourierID:             courierID,
		Items:                 items,
		TotalAmount:           o.TotalAmount(),
		Status:                o.Status().String(),
		DeliveryAddress:       o.DeliveryAddress(),
		CreatedAt:             o.CreatedAt(),
		EstimatedDeliveryTime: o.EstimatedDeliveryTime(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including stored totals using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.IDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.IDFromString(dto.CustomerID)
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.IDFromString(dto.RestaurantID)
	if err != nil {
		return nil, err
	}

	var courierID *kernel.ID
	if dto.CourierID != nil {
		cID, courierErr := kernel.IDFromString(*dto.CourierID)
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &cID
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		menuItemID, idErr := kernel.IDFromString(itemDTO.MenuItemID)
		if idErr != nil {
			return nil, idErr
		}

		li, liErr := order.RestoreLineItem(
			menuItemID, itemDTO.Name, itemDTO.UnitPrice, itemDTO.Quantity, itemDTO.Subtotal)
		if liErr != nil {
			return nil, liErr
		}
		items = append(items, li)
	}

	return order.RestoreOrder(
		id, customerID, restaurantID, courierID, items,
		dto.TotalAmount, order.Status(dto.Status),
		dto.DeliveryAddress, dto.CreatedAt, dto.EstimatedDeliveryTime)
}
