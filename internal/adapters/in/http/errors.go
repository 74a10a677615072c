package http

import (
	"errors"
	"net/http"

	"fooddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// respondError translates application errors into HTTP responses.
// Business errors keep their message; anything unrecognized is treated as
// an internal failure and its details stay out of the response body.
func respondError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, errs.ErrDuplicate), errors.Is(err, errs.ErrConflict):
		code = http.StatusConflict
		message = err.Error()
	case errors.Is(err, errs.ErrInvalidState):
		code = http.StatusUnprocessableEntity
		message = err.Error()
	}

	return ctx.JSON(code, Error{Code: code, Message: message})
}

// respondValidationError reports a malformed or semantically invalid request.
func respondValidationError(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	})
}

// respondBindError reports a request body that could not be decoded.
func respondBindError(ctx echo.Context) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: "invalid request body",
	})
}
