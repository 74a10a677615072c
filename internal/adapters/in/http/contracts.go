package http

import (
	"time"

	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/order"
)

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Message wraps a human-readable confirmation for mutating endpoints that
// have no richer payload to return.
type Message struct {
	Message string `json:"message"`
}

// CreateCustomerRequest carries a new customer profile. The ID is
// client-supplied, matching how the demo dataset addresses customers.
type CreateCustomerRequest struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Customer is the customer profile representation.
type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}

// Restaurant is the restaurant listing representation.
type Restaurant struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Cuisine      string  `json:"cuisine"`
	DeliveryTime string  `json:"delivery_time"`
	Rating       float64 `json:"rating"`
	IsActive     bool    `json:"is_active"`
	Address      string  `json:"address"`
}

// MenuItem is the menu item representation.
type MenuItem struct {
	ID           string  `json:"id"`
	RestaurantID string  `json:"restaurant_id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	Category     string  `json:"category"`
	IsAvailable  bool    `json:"is_available"`
}

// RestaurantMenu pairs a restaurant with its currently available dishes.
type RestaurantMenu struct {
	Restaurant Restaurant `json:"restaurant"`
	MenuItems  []MenuItem `json:"menu_items"`
}

// CreateCourierRequest carries a new courier profile. Status defaults to
// available when omitted.
type CreateCourierRequest struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	VehicleType     string `json:"vehicle_type"`
	Status          string `json:"status"`
	CurrentLocation string `json:"current_location"`
}

// UpdateCourierStatusRequest carries the courier's new status.
type UpdateCourierStatusRequest struct {
	Status string `json:"status"`
}

// Courier is the courier representation.
type Courier struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	VehicleType     string `json:"vehicle_type"`
	Status          string `json:"status"`
	CurrentLocation string `json:"current_location"`
}

// CourierUpdated confirms a courier status change.
type CourierUpdated struct {
	Message string  `json:"message"`
	Courier Courier `json:"courier"`
}

// AddToCartRequest carries one cart entry to append.
type AddToCartRequest struct {
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
}

// CartItem is one cart entry priced at current menu rates.
type CartItem struct {
	MenuItemID string  `json:"menu_item_id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
	Subtotal   float64 `json:"subtotal"`
}

// Cart is a customer's cart with its running total.
type Cart struct {
	CustomerID  string     `json:"customer_id"`
	Items       []CartItem `json:"items"`
	TotalAmount float64    `json:"total_amount"`
}

// CartUpdated confirms a cart mutation and echoes the current cart.
type CartUpdated struct {
	Message string `json:"message"`
	Cart    Cart   `json:"cart"`
}

// CreateOrderRequest carries an order placement for a customer's cart.
type CreateOrderRequest struct {
	CustomerID      string `json:"customer_id"`
	DeliveryAddress string `json:"delivery_address"`
}

// UpdateOrderStatusRequest carries the order's new lifecycle status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// AssignCourierRequest carries the courier to put on an order.
type AssignCourierRequest struct {
	CourierID string `json:"courier_id"`
}

// OrderItem is one order line as snapshotted at placement.
type OrderItem struct {
	MenuItemID string  `json:"menu_item_id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
	Subtotal   float64 `json:"subtotal"`
}

// Order is the order representation.
type Order struct {
	ID                    string      `json:"id"`
	CustomerID            string      `json:"customer_id"`
	RestaurantID          string      `json:"restaurant_id"`
	CourierID             *string     `json:"courier_id"`
	Items                 []OrderItem `json:"items"`
	TotalAmount           float64     `json:"total_amount"`
	Status                string      `json:"status"`
	DeliveryAddress       string      `json:"delivery_address"`
	CreatedAt             time.Time   `json:"created_at"`
	EstimatedDeliveryTime string      `json:"estimated_delivery_time"`
}

// OrderUpdated confirms an order mutation and echoes the current order.
type OrderUpdated struct {
	Message string `json:"message"`
	Order   Order  `json:"order"`
}

func customerFromQuery(resp queries.CustomerResponse) Customer {
	return Customer{
		ID:        resp.ID,
		Name:      resp.Name,
		Email:     resp.Email,
		Phone:     resp.Phone,
		Address:   resp.Address,
		CreatedAt: resp.CreatedAt,
	}
}

func restaurantFromQuery(resp queries.RestaurantResponse) Restaurant {
	return Restaurant{
		ID:           resp.ID,
		Name:         resp.Name,
		Cuisine:      resp.Cuisine,
		DeliveryTime: resp.DeliveryTime,
		Rating:       resp.Rating,
		IsActive:     resp.IsActive,
		Address:      resp.Address,
	}
}

func menuItemFromQuery(resp queries.MenuItemResponse) MenuItem {
	return MenuItem{
		ID:           resp.ID,
		RestaurantID: resp.RestaurantID,
		Name:         resp.Name,
		Description:  resp.Description,
		Price:        resp.Price,
		Category:     resp.Category,
		IsAvailable:  resp.IsAvailable,
	}
}

func courierFromQuery(resp queries.CourierResponse) Courier {
	return Courier{
		ID:              resp.ID,
		Name:            resp.Name,
		Phone:           resp.Phone,
		VehicleType:     resp.VehicleType,
		Status:          resp.Status,
		CurrentLocation: resp.CurrentLocation,
	}
}

func courierFromDomain(c *courier.Courier) Courier {
	return Courier{
		ID:              c.ID().String(),
		Name:            c.Name(),
		Phone:           c.Phone(),
		VehicleType:     c.VehicleType(),
		Status:          c.Status().String(),
		CurrentLocation: c.CurrentLocation(),
	}
}

func cartFromQuery(resp queries.CartResponse) Cart {
	items := make([]CartItem, len(resp.Items))
	for i, item := range resp.Items {
		items[i] = CartItem{
			MenuItemID: item.MenuItemID,
			Name:       item.Name,
			Price:      item.Price,
			Quantity:   item.Quantity,
			Subtotal:   item.Subtotal,
		}
	}

	return Cart{
		CustomerID:  resp.CustomerID,
		Items:       items,
		TotalAmount: resp.Total,
	}
}

func orderFromQuery(resp queries.OrderResponse) Order {
	items := make([]OrderItem, len(resp.Items))
	for i, item := range resp.Items {
		items[i] = OrderItem{
			MenuItemID: item.MenuItemID,
			Name:       item.Name,
			Price:      item.Price,
			Quantity:   item.Quantity,
			Subtotal:   item.Subtotal,
		}
	}

	return Order{
		ID:                    resp.ID,
		CustomerID:            resp.CustomerID,
		RestaurantID:          resp.RestaurantID,
		CourierID:             resp.CourierID,
		Items:                 items,
		TotalAmount:           resp.TotalAmount,
		Status:                resp.Status,
		DeliveryAddress:       resp.DeliveryAddress,
		CreatedAt:             resp.CreatedAt,
		EstimatedDeliveryTime: resp.EstimatedDeliveryTime,
	}
}

func orderFromDomain(o *order.Order) Order {
	items := make([]OrderItem, len(o.LineItems()))
	for i, li := range o.LineItems() {
		items[i] = OrderItem{
			MenuItemID: li.MenuItemID().String(),
			Name:       li.Name(),
			Price:      li.UnitPrice(),
			Quantity:   li.Quantity(),
			Subtotal:   li.Subtotal(),
		}
	}

	var courierID *string
	if o.CourierID() != nil {
		id := o.CourierID().String()
		courierID = &id
	}

	return Order{
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
