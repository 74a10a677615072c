package queries

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// GetOrdersQueryHandler lists orders with their line items from the database.
//
// Example:
//
//	handler := NewGetOrdersQueryHandler(db)
//	query, _ := NewGetOrdersQuery(nil, "")
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//	fmt.Printf("%d orders on record\n", len(orders))
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listings.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query to list orders, newest first.
// Line items are fetched in one pass and grouped per order in memory.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	where := "TRUE"
	args := make([]any, 0, 2)
	if query.CustomerID() != nil {
		where += " AND o.customer_id = ?"
		args = append(args, query.CustomerID().String())
	}
	if query.Status() != "" {
		where += " AND o.status = ?"
		args = append(args, query.Status().String())
	}

	orders := make([]OrderResponse, 0)
	index := make(map[string]int)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.customer_id,
			o.restaurant_id,
			o.courier_id,
			o.total_amount,
			o.status,
			o.delivery_address,
			o.created_at,
			o.estimated_delivery_time
		FROM orders o
		WHERE `+where+`
		ORDER BY o.created_at DESC, o.id
	`, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp OrderResponse
		var courierID sql.NullString

		if err = rows.Scan(
			&resp.ID,
			&resp.CustomerID,
			&resp.RestaurantID,
			&courierID,
			&resp.TotalAmount,
			&resp.Status,
			&resp.DeliveryAddress,
			&resp.CreatedAt,
			&resp.EstimatedDeliveryTime,
		); err != nil {
			return nil, err
		}

		if courierID.Valid {
			resp.CourierID = &courierID.String
		}
		resp.Items = make([]OrderItemResponse, 0)

		index[resp.ID] = len(orders)
		orders = append(orders, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return orders, nil
	}

	itemRows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			oi.order_id,
			oi.menu_item_id,
			oi.name,
			oi.unit_price,
			oi.quantity,
			oi.subtotal
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		WHERE `+where+`
		ORDER BY oi.id
	`, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var orderID string
		var item OrderItemResponse

		if err = itemRows.Scan(
			&orderID,
			&item.MenuItemID,
			&item.Name,
			&item.Price,
			&item.Quantity,
			&item.Subtotal,
		); err != nil {
			return nil, err
		}

		if i, ok := index[orderID]; ok {
			orders[i].Items = append(orders[i].Items, item)
		}
	}
	if err = itemRows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
