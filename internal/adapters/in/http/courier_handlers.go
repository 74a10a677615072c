package http

import (
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreateCourier handles POST /couriers - registers a new courier.
func (s *Server) CreateCourier(ctx echo.Context) error {
	var req CreateCourierRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBindError(ctx)
	}

	courierID, err := kernel.IDFromString(req.ID)
	if err != nil {
		return respondValidationError(ctx, err)
	}

	cmd, err := commands.NewCreateCourierCommand(
		courierID, req.Name, req.Phone, req.VehicleType,
		courier.Status(req.Status), req.CurrentLocation)
	if err != nil {
		return respondValidationError(ctx, err)
	}

	if err = s.createCourierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return s.respondCourier(ctx, http.StatusCreated, courierID)
}

// GetCouriers handles GET /couriers - lists the courier fleet.
// Accepts an optional "status" query parameter.
func (s *Server) GetCouriers(ctx echo.Context) error {
	query, err := queries.NewGetCouriersQuery(courier.Status(ctx.QueryParam("status")))
	if err != nil {
		return respondValidationError(ctx, err)
	}

	couriers, err := s.getCouriersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]Courier, len(couriers))
	for i, c := range couriers {
		response[i] = courierFromQuery(c)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCourier handles GET /couriers/:id - retrieves one courier.
func (s *Server) GetCourier(ctx echo.Context) error {
	courierID, err := kernel.IDFromString(ctx.Param("id"))
	if err != nil {
		return respondValidationError(ctx, err)
	}

	return s.respondCourier(ctx, http.StatusOK, courierID)
}

// UpdateCourierStatus handles PUT /couriers/:id/status - sets a courier's
// status directly, bypassing the assignment workflow.
func (s *Server) UpdateCourierStatus(ctx echo.Context) error {
	courierID, err := kernel.IDFromString(ctx.Param("id"))
	if err != nil {
		return respondValidationError(ctx, err)
	}

	var req UpdateCourierStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBindError(ctx)
	}

	cmd, err := commands.NewUpdateCourierStatusCommand(courierID, courier.Status(req.Status))
	if err != nil {
		return respondValidationError(ctx, err)
	}

	updated, err := s.updateCourierStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CourierUpdated{
		Message: "Courier status updated to " + req.Status,
		Courier: courierFromDomain(updated),
	})
}

func (s *Server) respondCourier(ctx echo.Context, code int, courierID kernel.ID) error {
	query, err := queries.NewGetCourierQuery(courierID)
	if err != nil {
		return respondValidationError(ctx, err)
	}

	found, err := s.getCourierHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(code, courierFromQuery(found))
}
