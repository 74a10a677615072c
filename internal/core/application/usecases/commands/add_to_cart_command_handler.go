package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/cart"
	"fooddelivery/internal/pkg/errs"
)

// AddToCartCommandHandler handles adding menu items to customer carts.
// Verifies the customer exists and the menu item is currently available
// before touching the cart. A customer without a cart gets one created on
// the first add.
type AddToCartCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewAddToCartCommandHandler creates a handler for cart additions.
// Requires a CartUoWFactory for transactional persistence.
func NewAddToCartCommandHandler(uowFactory CartUoWFactory) AddToCartCommandHandler {
	return AddToCartCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cart addition command.
// Returns an object-not-found error if the customer does not exist or the
// menu item does not exist or is unavailable. Items are appended as-is;
// repeated adds of the same menu item produce separate cart entries.
func (h AddToCartCommandHandler) Handle(ctx context.Context, cmd AddToCartCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID()); err != nil {
		return err
	}

	menuItem, err := uow.RestaurantRepository().GetMenuItem(ctx, cmd.MenuItemID())
	if err != nil {
		return err
	}
	if !menuItem.IsAvailable() {
		return errs.NewObjectNotFoundError("menuItemId", cmd.MenuItemID().String())
	}

	cartRepo := uow.CartRepository()
	customerCart, err := cartRepo.Get(ctx, cmd.CustomerID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		customerCart, err = cart.NewCart(cmd.CustomerID())
	}
	if err != nil {
		return err
	}

	if err = customerCart.AddItem(cmd.MenuItemID(), cmd.Quantity()); err != nil {
		return err
	}

	if err = cartRepo.Save(ctx, customerCart); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
