package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/cart"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"
)

// defaultEstimatedDeliveryTime is the estimate quoted on every new order.
const defaultEstimatedDeliveryTime = "30-40 min"

// CreateOrderCommandHandler orchestrates order placement: it prices the
// customer's cart against the current menu, enforces the single-restaurant
// rule, tries to assign an available courier right away, and clears the
// cart. Everything runs in one transaction so a failure at any step leaves
// the cart and couriers untouched.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory,
//	    services.NewFirstAvailableSelector(), true)
//	cmd, _ := NewCreateOrderCommand(customerID, "123 Main St")
//
//	placed, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrInvalidState):
//	    // cart empty or nothing left after pruning missing items
//	case errors.Is(err, errs.ErrConflict):
//	    // cart mixes items from different restaurants
//	case err != nil:
//	    return err
//	default:
//	    log.Printf("order %s placed", placed.ID())
//	}
type CreateOrderCommandHandler struct {
	uowFactory       UoWFactory
	selector         services.CourierSelector
	skipMissingItems bool
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// The selector decides which available courier takes the order; pass
// skipMissingItems true to silently drop cart entries whose menu item no
// longer exists, false to fail the order on the first missing item.
func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	selector services.CourierSelector,
	skipMissingItems bool,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:       uowFactory,
		selector:         selector,
		skipMissingItems: skipMissingItems,
	}
}

// Handle processes the order placement command and returns the persisted order.
// Line items snapshot the menu item name and price at placement time. Courier
// assignment is best effort: when no courier is available the order stays
// pending for the background dispatcher to pick up.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID()); err != nil {
		return nil, err
	}

	customerCart, err := uow.CartRepository().Get(ctx, cmd.CustomerID())
	if errors.Is(err, errs.ErrObjectNotFound) || (err == nil && customerCart.IsEmpty()) {
		return nil, errs.NewInvalidStateError("cart is empty")
	}
	if err != nil {
		return nil, err
	}

	lineItems, restaurantID, err := h.priceCart(ctx, uow, customerCart)
	if err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(
		order.NextID(), cmd.CustomerID(), restaurantID,
		cmd.DeliveryAddress(), lineItems, defaultEstimatedDeliveryTime)
	if err != nil {
		return nil, err
	}

	courierRepo := uow.CourierRepository()
	couriers, err := courierRepo.GetAllAvailable(ctx)
	if err != nil {
		return nil, err
	}

	if chosen := h.selector.Select(newOrder, couriers); chosen != nil {
		if err = chosen.Assign(); err != nil {
			return nil, err
		}
		if err = newOrder.AssignCourier(chosen.ID()); err != nil {
			return nil, err
		}
		if err = courierRepo.Update(ctx, chosen); err != nil {
			return nil, err
		}
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.CartRepository().Delete(ctx, cmd.CustomerID()); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}

// priceCart resolves cart entries against the menu and snapshots them as
// order line items. All resolved items must belong to a single restaurant.
func (h CreateOrderCommandHandler) priceCart(
	ctx context.Context,
	uow UoW,
	customerCart *cart.Cart,
) ([]order.LineItem, kernel.ID, error) {
	restaurantRepo := uow.RestaurantRepository()

	var restaurantID kernel.ID
	lineItems := make([]order.LineItem, 0, len(customerCart.Items()))
	for _, item := range customerCart.Items() {
		menuItem, err := restaurantRepo.GetMenuItem(ctx, item.MenuItemID())
		if errors.Is(err, errs.ErrObjectNotFound) && h.skipMissingItems {
			continue
		}
		if err != nil {
			return nil, kernel.ID{}, err
		}

		if restaurantID.IsZero() {
			restaurantID = menuItem.RestaurantID()
		} else if !restaurantID.IsEqual(menuItem.RestaurantID()) {
			return nil, kernel.ID{}, errs.NewConflictError("all items must be from the same restaurant")
		}

		lineItem, err := order.NewLineItem(menuItem.ID(), menuItem.Name(), menuItem.Price(), item.Quantity())
		if err != nil {
			return nil, kernel.ID{}, err
		}
		lineItems = append(lineItems, lineItem)
	}

	if len(lineItems) == 0 {
		return nil, kernel.ID{}, errs.NewInvalidStateError("no valid items in cart")
	}

	return lineItems, restaurantID, nil
}
