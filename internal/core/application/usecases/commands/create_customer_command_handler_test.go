package commands_test

import (
	"context"
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/customer"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateCustomerCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewCreateCustomerCommand(
		mustID(t, "c1"), "John Doe", "john@example.com", "+1234567890", "123 Main St")
	require.NoError(t, err)

	repo := new(MockCustomerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.MatchedBy(func(c *customer.Customer) bool {
			return c.ID().String() == "c1" && c.Name() == "John Doe"
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateCustomerCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateCustomerCommandHandler_Handle_DuplicateID(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewCreateCustomerCommand(
		mustID(t, "c1"), "John Doe", "john@example.com", "+1234567890", "123 Main St")
	require.NoError(t, err)

	repo := new(MockCustomerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*customer.Customer")).
			Return(errs.NewDuplicateError("customerId", "c1")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateCustomerCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrDuplicate)
	uow.AssertExpectations(t)
}

func TestCreateCustomerCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockCustomerUoWFactory)
	h := commands.NewCreateCustomerCommandHandler(factory)
	err := h.Handle(context.Background(), commands.CreateCustomerCommand{})
	require.ErrorIs(t, err, commands.ErrCreateCustomerCommandIsNotConstructed)
}
