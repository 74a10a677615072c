package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/order"
)

// AssignCourierCommandHandler handles manual courier assignment.
// The requested courier must be available; a courier already on the order
// counts as busy and is rejected the same way. The previously assigned
// courier, if different, is released in the same transaction so reassignment
// never strands anyone in busy status.
type AssignCourierCommandHandler struct {
	uowFactory OrderCourierUoWFactory
}

// NewAssignCourierCommandHandler creates a handler for manual courier assignment.
// Requires an OrderCourierUoWFactory so order and courier changes commit together.
func NewAssignCourierCommandHandler(uowFactory OrderCourierUoWFactory) AssignCourierCommandHandler {
	return AssignCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment command and returns the updated order.
// Returns object-not-found errors for a missing order or courier, a conflict
// error when the courier is not available, and an invalid-state error when
// the order is already delivered or cancelled.
func (h AssignCourierCommandHandler) Handle(ctx context.Context, cmd AssignCourierCommand) (*order.Order, error) {
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
	courierRepo := uow.CourierRepository()

	existing, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	replacement, err := courierRepo.Get(ctx, cmd.CourierID())
	if err != nil {
		return nil, err
	}

	if err = replacement.Assign(); err != nil {
		return nil, err
	}

	previousID := existing.CourierID()
	if err = existing.AssignCourier(replacement.ID()); err != nil {
		return nil, err
	}

	if previousID != nil {
		previous, err := courierRepo.Get(ctx, *previousID)
		if err != nil {
			return nil, err
		}

		previous.Release()
		if err = courierRepo.Update(ctx, previous); err != nil {
			return nil, err
		}
	}

	if err = courierRepo.Update(ctx, replacement); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return existing, nil
}
