package errs_test

import (
	"errors"
	"testing"

	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("customerId", "c1")

		assert.Equal(t, "customerId", err.ParamName)
		assert.Equal(t, "c1", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: c1", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("customerId", "c1", cause)

		assert.Equal(t, "customerId", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: customerId, ID is: c1 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("non-string ID", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", 42)

		assert.Equal(t, "object not found: 42", err.Error())

		cause := errors.New("row vanished")
		withCause := errs.NewObjectNotFoundErrorWithCause("orderId", 42, cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 42 (cause: row vanished)",
			withCause.Error())
	})
}

func TestConflictError(t *testing.T) {
	t.Run("NewConflictError", func(t *testing.T) {
		err := errs.NewConflictError("courier is not available")

		assert.Equal(t, "courier is not available", err.Message)
		require.NoError(t, err.Cause)
		assert.Equal(t, "conflict: courier is not available", err.Error())
		assert.Equal(t, errs.ErrConflict, err.Unwrap())
	})

	t.Run("NewConflictErrorWithCause", func(t *testing.T) {
		cause := errors.New("status is busy")
		err := errs.NewConflictErrorWithCause("courier is not available", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "conflict: courier is not available (cause: status is busy)", err.Error())
	})
}

func TestInvalidStateError(t *testing.T) {
	t.Run("NewInvalidStateError", func(t *testing.T) {
		err := errs.NewInvalidStateError("cart is empty")

		assert.Equal(t, "cart is empty", err.Message)
		assert.Equal(t, "invalid state: cart is empty", err.Error())
		assert.Equal(t, errs.ErrInvalidState, err.Unwrap())
	})
}

func TestDuplicateError(t *testing.T) {
	t.Run("NewDuplicateError", func(t *testing.T) {
		err := errs.NewDuplicateError("customerId", "c1")

		assert.Equal(t, "customerId", err.ParamName)
		assert.Equal(t, "c1", err.ID)
		assert.Equal(t, "duplicate object: c1", err.Error())
		assert.Equal(t, errs.ErrDuplicate, err.Unwrap())
	})

	t.Run("NewDuplicateErrorWithCause", func(t *testing.T) {
		cause := errors.New("unique constraint violated")
		err := errs.NewDuplicateErrorWithCause("email", "john@example.com", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"duplicate object: param is: email, ID is: john@example.com (cause: unique constraint violated)",
			err.Error())
	})

	t.Run("non-string ID", func(t *testing.T) {
		err := errs.NewDuplicateError("orderId", 42)

		assert.Equal(t, "duplicate object: 42", err.Error())

		cause := errors.New("unique constraint violated")
		withCause := errs.NewDuplicateErrorWithCause("orderId", 42, cause)
		assert.Equal(t,
			"duplicate object: param is: orderId, ID is: 42 (cause: unique constraint violated)",
			withCause.Error())
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("name")

		assert.Equal(t, "name", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: name", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("quantity")

		assert.Equal(t, "quantity", err.ParamName)
		assert.Equal(t, "value is invalid: quantity", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		cause := errors.New("hello\nworld")
		err := errs.NewValueIsInvalidErrorWithCause("text", cause)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "conflict", errs.ErrConflict.Error())
		assert.Equal(t, "invalid state", errs.ErrInvalidState.Error())
		assert.Equal(t, "duplicate object", errs.ErrDuplicate.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("customerId", "c1"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewConflictError("mixed restaurants"), errs.ErrConflict)
		require.ErrorIs(t, errs.NewInvalidStateError("cart is empty"), errs.ErrInvalidState)
		require.ErrorIs(t, errs.NewDuplicateError("courierId", "courier1"), errs.ErrDuplicate)
		require.ErrorIs(t, errs.NewValueIsRequiredError("name"), errs.ErrValueIsRequired)
		require.ErrorIs(t, errs.NewValueIsInvalidError("quantity"), errs.ErrValueIsInvalid)
	})
}
