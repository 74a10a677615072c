package http

import (
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// AddToCart handles POST /customers/:id/cart - appends one entry to the
// customer's cart, creating the cart on first use.
func (s *Server) AddToCart(ctx echo.Context) error {
	customerID, err := kernel.IDFromString(ctx.Param("id"))
	if err != nil {
		return respondValidationError(ctx, err)
	}

	var req AddToCartRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBindError(ctx)
	}

	menuItemID, err := kernel.IDFromString(req.MenuItemID)
	if err != nil {
		return respondValidationError(ctx, err)
	}

	cmd, err := commands.NewAddToCartCommand(customerID, menuItemID, req.Quantity)
	if err != nil {
		return respondValidationError(ctx, err)
	}

	if err = s.addToCartHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	current, err := s.fetchCart(ctx, customerID)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CartUpdated{
		Message: "Item added to cart",
		Cart:    current,
	})
}

// GetCart handles GET /customers/:id/cart - retrieves the customer's cart
// priced at current menu rates. An empty cart is a valid, empty response.
func (s *Server) GetCart(ctx echo.Context) error {
	customerID, err := kernel.IDFromString(ctx.Param("id"))
	if err != nil {
		return respondValidationError(ctx, err)
	}

	current, err := s.fetchCart(ctx, customerID)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, current)
}

// ClearCart handles DELETE /customers/:id/cart - drops the customer's cart.
// Clearing an absent cart succeeds.
func (s *Server) ClearCart(ctx echo.Context) error {
	customerID, err := kernel.IDFromString(ctx.Param("id"))
	if err != nil {
		return respondValidationError(ctx, err)
	}

	cmd, err := commands.NewClearCartCommand(customerID)
	if err != nil {
		return respondValidationError(ctx, err)
	}

	if err = s.clearCartHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Message{Message: "Cart cleared successfully"})
}

func (s *Server) fetchCart(ctx echo.Context, customerID kernel.ID) (Cart, error) {
	query, err := queries.NewGetCartQuery(customerID)
	if err != nil {
		return Cart{}, err
	}

	resp, err := s.getCartHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return Cart{}, err
	}

	return cartFromQuery(resp), nil
}
