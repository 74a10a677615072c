package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"
)

var (
	ErrNoPendingOrders     = errors.New("no pending orders to dispatch")
	ErrNoAvailableCouriers = errors.New("no available couriers")
)

// DispatchOrdersCommandHandler matches unassigned pending orders with
// available couriers. One invocation dispatches at most one order; the
// scheduled job calls it repeatedly.
//
// Example:
//
//	handler := NewDispatchOrdersCommandHandler(uowFactory, selector)
//	err := handler.Handle(ctx, NewDispatchOrdersCommand())
//	switch {
//	case errors.Is(err, ErrNoPendingOrders):
//	    log.Println("nothing to dispatch")
//	case errors.Is(err, ErrNoAvailableCouriers):
//	    log.Println("all couriers are busy")
//	case err != nil:
//	    log.Printf("dispatch failed: %v", err)
//	}
type DispatchOrdersCommandHandler struct {
	uowFactory OrderCourierUoWFactory
	selector   services.CourierSelector
}

// NewDispatchOrdersCommandHandler creates a handler for background dispatch.
// The selector decides which available courier takes the order.
func NewDispatchOrdersCommandHandler(
	uowFactory OrderCourierUoWFactory,
	selector services.CourierSelector,
) DispatchOrdersCommandHandler {
	return DispatchOrdersCommandHandler{
		uowFactory: uowFactory,
		selector:   selector,
	}
}

// Handle processes the dispatch command.
// Retrieves the oldest pending order without a courier, picks an available
// courier via the selector, and updates both entities in one transaction.
// Returns ErrNoPendingOrders or ErrNoAvailableCouriers when there is no work.
func (h DispatchOrdersCommandHandler) Handle(ctx context.Context, cmd DispatchOrdersCommand) error {
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

	orderRepo := uow.OrderRepository()
	courierRepo := uow.CourierRepository()

	pending, err := orderRepo.GetFirstUnassignedPending(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoPendingOrders
	}
	if err != nil {
		return err
	}

	couriers, err := courierRepo.GetAllAvailable(ctx)
	if err != nil {
		return err
	}

	chosen := h.selector.Select(pending, couriers)
	if chosen == nil {
		return ErrNoAvailableCouriers
	}

	if err = chosen.Assign(); err != nil {
		return err
	}
	if err = pending.AssignCourier(chosen.ID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, pending); err != nil {
		return err
	}

	if err = courierRepo.Update(ctx, chosen); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
