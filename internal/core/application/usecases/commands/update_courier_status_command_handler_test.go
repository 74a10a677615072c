package commands_test

import (
	"context"
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateCourierStatusCommandHandler_Handle_SetsStatus(t *testing.T) {
	ctx := context.Background()
	existing := testCourier(t, "courier1")
	cmd, err := commands.NewUpdateCourierStatusCommand(existing.ID(), courier.StatusOffline)
	require.NoError(t, err)

	repo := new(MockCourierRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CourierRepository").Return(repo).Once(),
		repo.On("Get", ctx, existing.ID()).Return(existing, nil).Once(),
		repo.On("Update", ctx, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCourierUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateCourierStatusCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, courier.StatusOffline, updated.Status())
	uow.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestUpdateCourierStatusCommandHandler_Handle_CourierNotFound(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewUpdateCourierStatusCommand(mustID(t, "missing"), courier.StatusBusy)
	require.NoError(t, err)

	repo := new(MockCourierRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CourierRepository").Return(repo).Once(),
		repo.On("Get", ctx, mustID(t, "missing")).
			Return(nil, errs.NewObjectNotFoundError("courierId", "missing")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCourierUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateCourierStatusCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestNewUpdateCourierStatusCommand_RejectsUnknownStatus(t *testing.T) {
	_, err := commands.NewUpdateCourierStatusCommand(mustID(t, "courier1"), courier.Status("napping"))
	require.Error(t, err)
}
