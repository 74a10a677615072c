package commands_test

import (
	"context"
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDispatchHandler(factory *MockOrderCourierUoWFactory) commands.DispatchOrdersCommandHandler {
	return commands.NewDispatchOrdersCommandHandler(factory, services.NewFirstAvailableSelector())
}

func TestDispatchOrdersCommandHandler_Handle_AssignsOldestPendingOrder(t *testing.T) {
	ctx := context.Background()
	pending := testOrder(t, "c1", "r1")
	free := testCourier(t, "courier1")

	orderRepo := new(MockOrderRepository)
	courierRepo := new(MockCourierRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		orderRepo.On("GetFirstUnassignedPending", ctx).Return(pending, nil).Once(),
		courierRepo.On("GetAllAvailable", ctx).Return([]*courier.Courier{free}, nil).Once(),
		orderRepo.On("Update", ctx, pending).Return(nil).Once(),
		courierRepo.On("Update", ctx, free).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderCourierUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newDispatchHandler(factory)
	err := h.Handle(ctx, commands.NewDispatchOrdersCommand())
	require.NoError(t, err)
	require.NotNil(t, pending.CourierID())
	require.True(t, pending.CourierID().IsEqual(free.ID()))
	require.Equal(t, courier.StatusBusy, free.Status())
	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	courierRepo.AssertExpectations(t)
}

func TestDispatchOrdersCommandHandler_Handle_NoPendingOrders(t *testing.T) {
	ctx := context.Background()

	orderRepo := new(MockOrderRepository)
	courierRepo := new(MockCourierRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		orderRepo.On("GetFirstUnassignedPending", ctx).
			Return(nil, errs.NewObjectNotFoundError("order", "pending")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderCourierUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newDispatchHandler(factory)
	err := h.Handle(ctx, commands.NewDispatchOrdersCommand())
	require.ErrorIs(t, err, commands.ErrNoPendingOrders)
	uow.AssertExpectations(t)
}

func TestDispatchOrdersCommandHandler_Handle_NoAvailableCouriers(t *testing.T) {
	ctx := context.Background()
	pending := testOrder(t, "c1", "r1")

	orderRepo := new(MockOrderRepository)
	courierRepo := new(MockCourierRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		orderRepo.On("GetFirstUnassignedPending", ctx).Return(pending, nil).Once(),
		courierRepo.On("GetAllAvailable", ctx).Return([]*courier.Courier{}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderCourierUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newDispatchHandler(factory)
	err := h.Handle(ctx, commands.NewDispatchOrdersCommand())
	require.ErrorIs(t, err, commands.ErrNoAvailableCouriers)
	require.Nil(t, pending.CourierID())
	uow.AssertExpectations(t)
}

func TestDispatchOrdersCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockOrderCourierUoWFactory)
	h := newDispatchHandler(factory)
	err := h.Handle(context.Background(), commands.DispatchOrdersCommand{})
	require.ErrorIs(t, err, commands.ErrDispatchOrdersCommandIsNotConstructed)
}
