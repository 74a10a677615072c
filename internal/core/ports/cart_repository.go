package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/cart"
	"fooddelivery/internal/core/domain/model/kernel"
)

// CartRepository defines the persistence contract for carts.
// Carts are keyed by customer ID; each customer has at most one cart.
type CartRepository interface {
	// Get retrieves the customer's cart.
	// Returns an object-not-found error if the customer has no cart.
	Get(ctx context.Context, customerID kernel.ID) (*cart.Cart, error)

	// Save upserts the customer's cart with its current items.
	Save(ctx context.Context, c *cart.Cart) error

	// Delete removes the customer's cart. Deleting an absent cart is not
	// an error; the operation is idempotent.
	Delete(ctx context.Context, customerID kernel.ID) error
}
