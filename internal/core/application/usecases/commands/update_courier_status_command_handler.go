package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/courier"
)

// UpdateCourierStatusCommandHandler handles direct courier status changes.
// Unlike order-driven transitions, a dispatcher may set any valid status
// here, including forcing a busy courier offline.
type UpdateCourierStatusCommandHandler struct {
	uowFactory CourierUoWFactory
}

// NewUpdateCourierStatusCommandHandler creates a handler for courier status updates.
// Requires a CourierUoWFactory for transactional persistence.
func NewUpdateCourierStatusCommandHandler(uowFactory CourierUoWFactory) UpdateCourierStatusCommandHandler {
	return UpdateCourierStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status update command and returns the updated courier.
// Returns an object-not-found error if the courier does not exist.
func (h UpdateCourierStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateCourierStatusCommand,
) (*courier.Courier, error) {
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

	courierRepo := uow.CourierRepository()
	existing, err := courierRepo.Get(ctx, cmd.CourierID())
	if err != nil {
		return nil, err
	}

	if err = existing.SetStatus(cmd.Status()); err != nil {
		return nil, err
	}

	if err = courierRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return existing, nil
}
