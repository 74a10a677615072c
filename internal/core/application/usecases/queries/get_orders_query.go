package queries

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves orders, optionally filtered by customer and/or
// lifecycle status. Zero-value filters mean "all".
//
// Example:
//
//	customerID, _ := kernel.IDFromString("c1")
//	query, _ := NewGetOrdersQuery(&customerID, order.StatusPending)
//	orders, err := handler.Handle(ctx, query)
type GetOrdersQuery struct {
	customerID *kernel.ID
	status     order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query to list orders.
// Pass a nil customer ID to list orders for all customers and an empty
// status to include every lifecycle status.
func NewGetOrdersQuery(customerID *kernel.ID, status order.Status) (GetOrdersQuery, error) {
	if customerID != nil {
		if err := customerID.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}
	if status != "" {
		if err := status.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}

	return GetOrdersQuery{
		customerID: customerID,
		status:     status,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersQueryIsNotConstructed if validation fails.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// CustomerID returns the customer filter, or nil when listing all customers.
func (q GetOrdersQuery) CustomerID() *kernel.ID {
	return q.customerID
}

// Status returns the status filter, or the empty status when unfiltered.
func (q GetOrdersQuery) Status() order.Status {
	return q.status
}

// OrderItemResponse represents one line item as snapshotted at placement.
type OrderItemResponse struct {
	MenuItemID string
	Name       string
	Price      float64
	Quantity   int
	Subtotal   float64
}

// OrderResponse represents an order with its line items and assignment state.
type OrderResponse struct {
	ID                    string
	CustomerID            string
	RestaurantID          string
	CourierID             *string
	Items                 []OrderItemResponse
	TotalAmount           float64
	Status                string
	DeliveryAddress       string
	CreatedAt             time.Time
	EstimatedDeliveryTime string
}
