package commands_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/cart"
	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/customer"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/restaurant"

	"github.com/stretchr/testify/require"
)

func mustID(t *testing.T, s string) kernel.ID {
	t.Helper()
	id, err := kernel.IDFromString(s)
	require.NoError(t, err)
	return id
}

func testCustomer(t *testing.T, id string) *customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer(mustID(t, id), "John Doe", "john@example.com", "+1234567890", "123 Main St")
	require.NoError(t, err)
	return c
}

func testMenuItem(t *testing.T, id, restaurantID, name string, price float64) *restaurant.MenuItem {
	t.Helper()
	item, err := restaurant.NewMenuItem(
		mustID(t, id), mustID(t, restaurantID), name, "", price, "Mains")
	require.NoError(t, err)
	return item
}

func testCart(t *testing.T, customerID string, items map[string]int) *cart.Cart {
	t.Helper()
	c, err := cart.NewCart(mustID(t, customerID))
	require.NoError(t, err)
	for menuItemID, qty := range items {
		require.NoError(t, c.AddItem(mustID(t, menuItemID), qty))
	}
	return c
}

func testCourier(t *testing.T, id string) *courier.Courier {
	t.Helper()
	c, err := courier.NewCourier(mustID(t, id), "Mike Wilson", "+1234567892", "bike")
	require.NoError(t, err)
	return c
}

func testOrder(t *testing.T, customerID, restaurantID string) *order.Order {
	t.Helper()
	item, err := order.NewLineItem(mustID(t, "m1"), "Margherita Pizza", 12.99, 2)
	require.NoError(t, err)

	o, err := order.NewOrder(
		order.NextID(), mustID(t, customerID), mustID(t, restaurantID),
		"123 Main St", []order.LineItem{item}, "30-40 min")
	require.NoError(t, err)
	return o
}
