package restaurant_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/restaurant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustID(t *testing.T, s string) kernel.ID {
	t.Helper()
	id, err := kernel.IDFromString(s)
	require.NoError(t, err)
	return id
}

func TestNewRestaurant(t *testing.T) {
	t.Run("creates_active_restaurant", func(t *testing.T) {
		r, err := restaurant.NewRestaurant(mustID(t, "r1"), "Pizza Palace", "Italian", "30-40 min", 4.5, "789 Pizza St, City")

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.Equal(t, "r1", r.ID().String())
		assert.Equal(t, "Pizza Palace", r.Name())
		assert.Equal(t, "Italian", r.Cuisine())
		assert.Equal(t, "30-40 min", r.DeliveryTime())
		assert.InDelta(t, 4.5, r.Rating(), 1e-9)
		assert.True(t, r.IsActive())
	})

	t.Run("rejects_empty_name", func(t *testing.T) {
		_, err := restaurant.NewRestaurant(mustID(t, "r1"), "", "Italian", "30-40 min", 4.5, "addr")
		require.ErrorIs(t, err, restaurant.ErrNameIsRequired)
	})

	t.Run("rejects_empty_cuisine", func(t *testing.T) {
		_, err := restaurant.NewRestaurant(mustID(t, "r1"), "Pizza Palace", "", "30-40 min", 4.5, "addr")
		require.ErrorIs(t, err, restaurant.ErrCuisineIsRequired)
	})

	t.Run("rejects_negative_rating", func(t *testing.T) {
		_, err := restaurant.NewRestaurant(mustID(t, "r1"), "Pizza Palace", "Italian", "30-40 min", -1, "addr")
		require.ErrorIs(t, err, restaurant.ErrRatingIsInvalid)
	})
}

func TestRestoreRestaurant(t *testing.T) {
	t.Run("preserves_inactive_flag", func(t *testing.T) {
		r, err := restaurant.RestoreRestaurant(mustID(t, "r2"), "Sushi Spot", "Japanese", "40-50 min", 4.7, false, "321 Sushi Rd")

		require.NoError(t, err)
		assert.False(t, r.IsActive())
	})
}

func TestRestaurant_Validate(t *testing.T) {
	t.Run("zero_value_is_rejected", func(t *testing.T) {
		var r restaurant.Restaurant
		require.ErrorIs(t, r.Validate(), restaurant.ErrRestaurantIsNotConstructed)
	})
}
