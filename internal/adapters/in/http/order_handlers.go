package http

import (
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// CreateOrder handles POST /orders - converts the customer's cart into an
// order, assigning a courier when one is available.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBindError(ctx)
	}

	customerID, err := kernel.IDFromString(req.CustomerID)
	if err != nil {
		return respondValidationError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(customerID, req.DeliveryAddress)
	if err != nil {
		return respondValidationError(ctx, err)
	}

	placed, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderFromDomain(placed))
}

// GetOrders handles GET /orders - lists orders.
// Accepts optional "customer_id" and "status" query parameters.
func (s *Server) GetOrders(ctx echo.Context) error {
	var customerID *kernel.ID
	if raw := ctx.QueryParam("customer_id"); raw != "" {
		id, err := kernel.IDFromString(raw)
		if err != nil {
			return respondValidationError(ctx, err)
		}
		customerID = &id
	}

	query, err := queries.NewGetOrdersQuery(customerID, order.Status(ctx.QueryParam("status")))
	if err != nil {
		return respondValidationError(ctx, err)
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = orderFromQuery(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /orders/:id - retrieves one order with its items.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.IDFromString(ctx.Param("id"))
	if err != nil {
		return respondValidationError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return respondValidationError(ctx, err)
	}

	found, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromQuery(found))
}

// UpdateOrderStatus handles PUT /orders/:id/status - advances or cancels an
// order. Reaching a terminal status releases the assigned courier.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.IDFromString(ctx.Param("id"))
	if err != nil {
		return respondValidationError(ctx, err)
	}

	var req UpdateOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBindError(ctx)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, order.Status(req.Status))
	if err != nil {
		return respondValidationError(ctx, err)
	}

	updated, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderUpdated{
		Message: "Order status updated to " + req.Status,
		Order:   orderFromDomain(updated),
	})
}

// AssignCourier handles PUT /orders/:id/assign-courier - puts a specific
// courier on an order, releasing the previously assigned one.
func (s *Server) AssignCourier(ctx echo.Context) error {
	orderID, err := kernel.IDFromString(ctx.Param("id"))
	if err != nil {
		return respondValidationError(ctx, err)
	}

	var req AssignCourierRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBindError(ctx)
	}

	courierID, err := kernel.IDFromString(req.CourierID)
	if err != nil {
		return respondValidationError(ctx, err)
	}

	cmd, err := commands.NewAssignCourierCommand(orderID, courierID)
	if err != nil {
		return respondValidationError(ctx, err)
	}

	updated, err := s.assignCourierHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderUpdated{
		Message: "Courier " + req.CourierID + " assigned to order " + ctx.Param("id"),
		Order:   orderFromDomain(updated),
	})
}
