package http

import (
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreateCustomer handles POST /customers - registers a new customer.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var req CreateCustomerRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBindError(ctx)
	}

	customerID, err := kernel.IDFromString(req.ID)
	if err != nil {
		return respondValidationError(ctx, err)
	}

	cmd, err := commands.NewCreateCustomerCommand(customerID, req.Name, req.Email, req.Phone, req.Address)
	if err != nil {
		return respondValidationError(ctx, err)
	}

	if err = s.createCustomerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return s.respondCustomer(ctx, http.StatusCreated, customerID)
}

// GetCustomer handles GET /customers/:id - retrieves a customer profile.
func (s *Server) GetCustomer(ctx echo.Context) error {
	customerID, err := kernel.IDFromString(ctx.Param("id"))
	if err != nil {
		return respondValidationError(ctx, err)
	}

	return s.respondCustomer(ctx, http.StatusOK, customerID)
}

func (s *Server) respondCustomer(ctx echo.Context, code int, customerID kernel.ID) error {
	query, err := queries.NewGetCustomerQuery(customerID)
	if err != nil {
		return respondValidationError(ctx, err)
	}

	customer, err := s.getCustomerHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(code, customerFromQuery(customer))
}
