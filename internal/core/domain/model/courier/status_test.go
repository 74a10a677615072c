package courier_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("valid_statuses", func(t *testing.T) {
		for _, s := range []courier.Status{courier.StatusAvailable, courier.StatusBusy, courier.StatusOffline} {
			require.NoError(t, s.Validate(), s)
		}
	})

	t.Run("invalid_statuses", func(t *testing.T) {
		for _, s := range []courier.Status{"", "AVAILABLE", "sleeping"} {
			require.ErrorIs(t, s.Validate(), errs.ErrValueIsInvalid, s)
		}
	})
}

func TestStatus_Assign(t *testing.T) {
	t.Run("available_becomes_busy", func(t *testing.T) {
		next, err := courier.StatusAvailable.Assign()
		require.NoError(t, err)
		assert.Equal(t, courier.StatusBusy, next)
	})

	t.Run("busy_rejects_assignment", func(t *testing.T) {
		_, err := courier.StatusBusy.Assign()
		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("offline_rejects_assignment", func(t *testing.T) {
		_, err := courier.StatusOffline.Assign()
		require.ErrorIs(t, err, errs.ErrConflict)
	})
}

func TestStatus_Release(t *testing.T) {
	assert.Equal(t, courier.StatusAvailable, courier.StatusBusy.Release())
	assert.Equal(t, courier.StatusAvailable, courier.StatusAvailable.Release())
}
