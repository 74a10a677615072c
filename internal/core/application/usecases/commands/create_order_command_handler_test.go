package commands_test

import (
	"context"
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCreateOrderHandler(factory *MockUoWFactory, skipMissing bool) commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(
		factory, services.NewFirstAvailableSelector(), skipMissing)
}

func TestCreateOrderCommandHandler_Handle_AssignsCourierAndClearsCart(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewCreateOrderCommand(mustID(t, "c1"), "123 Main St")
	require.NoError(t, err)

	customerRepo := new(MockCustomerRepository)
	cartRepo := new(MockCartRepository)
	restaurantRepo := new(MockRestaurantRepository)
	courierRepo := new(MockCourierRepository)
	orderRepo := new(MockOrderRepository)
	freeCourier := testCourier(t, "courier1")

	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", ctx, mustID(t, "c1")).Return(testCustomer(t, "c1"), nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("Get", ctx, mustID(t, "c1")).
			Return(testCart(t, "c1", map[string]int{"m1": 2}), nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("GetMenuItem", ctx, mustID(t, "m1")).
			Return(testMenuItem(t, "m1", "r1", "Margherita Pizza", 12.99), nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		courierRepo.On("GetAllAvailable", ctx).Return([]*courier.Courier{freeCourier}, nil).Once(),
		courierRepo.On("Update", ctx, freeCourier).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("Delete", ctx, mustID(t, "c1")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newCreateOrderHandler(factory, true)
	placed, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, placed)
	require.Equal(t, order.StatusPending, placed.Status())
	require.InDelta(t, 25.98, placed.TotalAmount(), 0.001)
	require.NotNil(t, placed.CourierID())
	require.True(t, placed.CourierID().IsEqual(mustID(t, "courier1")))
	require.Equal(t, courier.StatusBusy, freeCourier.Status())
	require.Equal(t, "30-40 min", placed.EstimatedDeliveryTime())

	uow.AssertExpectations(t)
	cartRepo.AssertExpectations(t)
	courierRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_NoCouriersLeavesOrderPending(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewCreateOrderCommand(mustID(t, "c1"), "123 Main St")
	require.NoError(t, err)

	customerRepo := new(MockCustomerRepository)
	cartRepo := new(MockCartRepository)
	restaurantRepo := new(MockRestaurantRepository)
	courierRepo := new(MockCourierRepository)
	orderRepo := new(MockOrderRepository)

	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", ctx, mustID(t, "c1")).Return(testCustomer(t, "c1"), nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("Get", ctx, mustID(t, "c1")).
			Return(testCart(t, "c1", map[string]int{"m1": 1}), nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("GetMenuItem", ctx, mustID(t, "m1")).
			Return(testMenuItem(t, "m1", "r1", "Margherita Pizza", 12.99), nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		courierRepo.On("GetAllAvailable", ctx).Return([]*courier.Courier{}, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("Delete", ctx, mustID(t, "c1")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newCreateOrderHandler(factory, true)
	placed, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Nil(t, placed.CourierID())
	require.Equal(t, order.StatusPending, placed.Status())
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_EmptyCart(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewCreateOrderCommand(mustID(t, "c1"), "123 Main St")
	require.NoError(t, err)

	customerRepo := new(MockCustomerRepository)
	cartRepo := new(MockCartRepository)

	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", ctx, mustID(t, "c1")).Return(testCustomer(t, "c1"), nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("Get", ctx, mustID(t, "c1")).
			Return(nil, errs.NewObjectNotFoundError("customerId", "c1")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newCreateOrderHandler(factory, true)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidState)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_MixedRestaurants(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewCreateOrderCommand(mustID(t, "c1"), "123 Main St")
	require.NoError(t, err)

	customerRepo := new(MockCustomerRepository)
	cartRepo := new(MockCartRepository)
	restaurantRepo := new(MockRestaurantRepository)

	customerCart := testCart(t, "c1", nil)
	require.NoError(t, customerCart.AddItem(mustID(t, "m1"), 1))
	require.NoError(t, customerCart.AddItem(mustID(t, "m3"), 1))

	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", ctx, mustID(t, "c1")).Return(testCustomer(t, "c1"), nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("Get", ctx, mustID(t, "c1")).Return(customerCart, nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("GetMenuItem", ctx, mustID(t, "m1")).
			Return(testMenuItem(t, "m1", "r1", "Margherita Pizza", 12.99), nil).Once(),
		restaurantRepo.On("GetMenuItem", ctx, mustID(t, "m3")).
			Return(testMenuItem(t, "m3", "r2", "California Roll", 8.99), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newCreateOrderHandler(factory, true)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrConflict)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_AllItemsMissing(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewCreateOrderCommand(mustID(t, "c1"), "123 Main St")
	require.NoError(t, err)

	customerRepo := new(MockCustomerRepository)
	cartRepo := new(MockCartRepository)
	restaurantRepo := new(MockRestaurantRepository)

	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", ctx, mustID(t, "c1")).Return(testCustomer(t, "c1"), nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("Get", ctx, mustID(t, "c1")).
			Return(testCart(t, "c1", map[string]int{"gone": 1}), nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("GetMenuItem", ctx, mustID(t, "gone")).
			Return(nil, errs.NewObjectNotFoundError("menuItemId", "gone")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newCreateOrderHandler(factory, true)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidState)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_MissingItemFailsWhenStrict(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewCreateOrderCommand(mustID(t, "c1"), "123 Main St")
	require.NoError(t, err)

	customerRepo := new(MockCustomerRepository)
	cartRepo := new(MockCartRepository)
	restaurantRepo := new(MockRestaurantRepository)

	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", ctx, mustID(t, "c1")).Return(testCustomer(t, "c1"), nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("Get", ctx, mustID(t, "c1")).
			Return(testCart(t, "c1", map[string]int{"gone": 1}), nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("GetMenuItem", ctx, mustID(t, "gone")).
			Return(nil, errs.NewObjectNotFoundError("menuItemId", "gone")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newCreateOrderHandler(factory, false)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_CustomerNotFound(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewCreateOrderCommand(mustID(t, "ghost"), "123 Main St")
	require.NoError(t, err)

	customerRepo := new(MockCustomerRepository)

	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", ctx, mustID(t, "ghost")).
			Return(nil, errs.NewObjectNotFoundError("customerId", "ghost")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newCreateOrderHandler(factory, true)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockUoWFactory)
	h := newCreateOrderHandler(factory, true)
	_, err := h.Handle(context.Background(), commands.CreateOrderCommand{})
	require.Error(t, err)
}
