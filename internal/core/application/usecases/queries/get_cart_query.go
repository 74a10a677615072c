package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetCartQueryIsNotConstructed = errors.New(
	"GetCartQuery must be created via NewGetCartQuery constructor",
)

// GetCartQuery retrieves a customer's cart priced against the current menu.
type GetCartQuery struct {
	customerID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetCartQuery creates a query for a customer's cart.
// Returns an error if the customer ID is invalid.
func NewGetCartQuery(customerID kernel.ID) (GetCartQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCartQuery{}, err
	}

	return GetCartQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCartQueryIsNotConstructed if validation fails.
func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

// CustomerID returns the identifier of the cart owner.
func (q GetCartQuery) CustomerID() kernel.ID {
	return q.customerID
}

// CartItemResponse represents one cart entry priced at current menu rates.
type CartItemResponse struct {
	MenuItemID string
	Name       string
	Price      float64
	Quantity   int
	Subtotal   float64
}

// CartResponse represents a customer's cart with its running total.
// Prices reflect the menu as of the query, not as of the add; the
// authoritative snapshot happens at order placement.
type CartResponse struct {
	CustomerID string
	Items      []CartItemResponse
	Total      float64
}
