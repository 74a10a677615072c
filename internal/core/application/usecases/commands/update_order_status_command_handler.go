package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/order"
)

// UpdateOrderStatusCommandHandler handles order lifecycle transitions.
// When an order reaches a terminal status (delivered or cancelled) its
// courier, if any, is released back to available in the same transaction.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderCourierUoWFactory
}

// NewUpdateOrderStatusCommandHandler creates a handler for order status updates.
// Requires an OrderCourierUoWFactory so order and courier changes commit together.
func NewUpdateOrderStatusCommandHandler(uowFactory OrderCourierUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status update command and returns the updated order.
// Illegal transitions (skipping steps, leaving a terminal status) surface as
// invalid-state errors from the aggregate.
func (h UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()
	existing, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = existing.ChangeStatus(cmd.Status()); err != nil {
		return nil, err
	}

	if existing.IsTerminal() && existing.CourierID() != nil {
		courierRepo := uow.CourierRepository()
		assigned, err := courierRepo.Get(ctx, *existing.CourierID())
		if err != nil {
			return nil, err
		}

		assigned.Release()
		if err = courierRepo.Update(ctx, assigned); err != nil {
			return nil, err
		}
	}

	if err = orderRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return existing, nil
}
