package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetCartQueryHandler retrieves customer carts from the database.
// Cart entries are joined against the menu for current names and prices;
// entries whose menu item has since been deleted are omitted from the view.
type GetCartQueryHandler struct {
	db *gorm.DB
}

// NewGetCartQueryHandler creates a handler for cart queries.
// Requires a GORM database connection for query execution.
func NewGetCartQueryHandler(db *gorm.DB) GetCartQueryHandler {
	return GetCartQueryHandler{db: db}
}

// Handle executes the query to retrieve a customer's cart.
// A customer with no cart yields an empty cart response rather than an
// error, matching what a storefront shows for a fresh session.
func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (CartResponse, error) {
	if err := query.Validate(); err != nil {
		return CartResponse{}, err
	}

	resp := CartResponse{
		CustomerID: query.CustomerID().String(),
		Items:      make([]CartItemResponse, 0),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			ci.menu_item_id,
			mi.name,
			mi.price,
			ci.quantity
		FROM cart_items ci
		JOIN carts c ON c.customer_id = ci.cart_customer_id
		JOIN menu_items mi ON mi.id = ci.menu_item_id
		WHERE c.customer_id = ?
		ORDER BY ci.id
	`, query.CustomerID().String()).Rows()
	if err != nil {
		return CartResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var item CartItemResponse
		if err = rows.Scan(&item.MenuItemID, &item.Name, &item.Price, &item.Quantity); err != nil {
			return CartResponse{}, err
		}

		item.Subtotal = item.Price * float64(item.Quantity)
		resp.Total += item.Subtotal
		resp.Items = append(resp.Items, item)
	}

	if err = rows.Err(); err != nil {
		return CartResponse{}, err
	}

	return resp, nil
}
