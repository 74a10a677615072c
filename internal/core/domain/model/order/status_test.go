package order_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("valid_statuses", func(t *testing.T) {
		statuses := []order.Status{
			order.StatusPending, order.StatusConfirmed, order.StatusCooking,
			order.StatusReadyForDelivery, order.StatusOnWay,
			order.StatusDelivered, order.StatusCancelled,
		}
		for _, s := range statuses {
			require.NoError(t, s.Validate(), s)
		}
	})

	t.Run("invalid_statuses", func(t *testing.T) {
		for _, s := range []order.Status{"", "PENDING", "shipped"} {
			require.ErrorIs(t, s.Validate(), errs.ErrValueIsInvalid, s)
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.StatusDelivered.IsTerminal())
	assert.True(t, order.StatusCancelled.IsTerminal())
	assert.False(t, order.StatusPending.IsTerminal())
	assert.False(t, order.StatusOnWay.IsTerminal())
}

func TestStatus_CanTransitionTo(t *testing.T) {
	t.Run("linear_flow_is_allowed", func(t *testing.T) {
		steps := []struct{ from, to order.Status }{
			{order.StatusPending, order.StatusConfirmed},
			{order.StatusConfirmed, order.StatusCooking},
			{order.StatusCooking, order.StatusReadyForDelivery},
			{order.StatusReadyForDelivery, order.StatusOnWay},
			{order.StatusOnWay, order.StatusDelivered},
		}
		for _, step := range steps {
			require.NoError(t, step.from.CanTransitionTo(step.to), "%s -> %s", step.from, step.to)
		}
	})

	t.Run("cancel_is_allowed_from_any_non_terminal_status", func(t *testing.T) {
		for _, s := range []order.Status{
			order.StatusPending, order.StatusConfirmed, order.StatusCooking,
			order.StatusReadyForDelivery, order.StatusOnWay,
		} {
			require.NoError(t, s.CanTransitionTo(order.StatusCancelled), s)
		}
	})

	t.Run("skipping_steps_is_rejected", func(t *testing.T) {
		require.ErrorIs(t, order.StatusPending.CanTransitionTo(order.StatusCooking), errs.ErrInvalidState)
		require.ErrorIs(t, order.StatusPending.CanTransitionTo(order.StatusDelivered), errs.ErrInvalidState)
		require.ErrorIs(t, order.StatusConfirmed.CanTransitionTo(order.StatusOnWay), errs.ErrInvalidState)
	})

	t.Run("moving_backwards_is_rejected", func(t *testing.T) {
		require.ErrorIs(t, order.StatusCooking.CanTransitionTo(order.StatusConfirmed), errs.ErrInvalidState)
		require.ErrorIs(t, order.StatusOnWay.CanTransitionTo(order.StatusPending), errs.ErrInvalidState)
	})

	t.Run("terminal_statuses_reject_all_transitions", func(t *testing.T) {
		for _, from := range []order.Status{order.StatusDelivered, order.StatusCancelled} {
			for _, to := range []order.Status{order.StatusPending, order.StatusOnWay, order.StatusCancelled, order.StatusDelivered} {
				require.ErrorIs(t, from.CanTransitionTo(to), errs.ErrInvalidState, "%s -> %s", from, to)
			}
		}
	})

	t.Run("invalid_target_is_rejected", func(t *testing.T) {
		require.ErrorIs(t, order.StatusPending.CanTransitionTo("shipped"), errs.ErrValueIsInvalid)
	})
}
