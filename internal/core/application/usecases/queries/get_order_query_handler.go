package queries

import (
	"context"
	"database/sql"
	"errors"

	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order lookups.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query to retrieve an order with its line items.
// Returns an object-not-found error if no order has the requested ID.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	var resp OrderResponse
	var courierID sql.NullString

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			restaurant_id,
			courier_id,
			total_amount,
			status,
			delivery_address,
			created_at,
			estimated_delivery_time
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Row()

	err := row.Scan(
		&resp.ID,
		&resp.CustomerID,
		&resp.RestaurantID,
		&courierID,
		&resp.TotalAmount,
		&resp.Status,
		&resp.DeliveryAddress,
		&resp.CreatedAt,
		&resp.EstimatedDeliveryTime,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return OrderResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID().String())
	}
	if err != nil {
		return OrderResponse{}, err
	}

	if courierID.Valid {
		resp.CourierID = &courierID.String
	}
	resp.Items = make([]OrderItemResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			menu_item_id,
			name,
			unit_price,
			quantity,
			subtotal
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, query.OrderID().String()).Rows()
	if err != nil {
		return OrderResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var item OrderItemResponse
		if err = rows.Scan(&item.MenuItemID, &item.Name, &item.Price, &item.Quantity, &item.Subtotal); err != nil {
			return OrderResponse{}, err
		}
		resp.Items = append(resp.Items, item)
	}

	if err = rows.Err(); err != nil {
		return OrderResponse{}, err
	}

	return resp, nil
}
