package commands_test

import (
	"testing"

	"lastmile/internal/core/application/usecases/commands"
	"lastmile/internal/core/domain/model/order"
	"lastmile/internal/core/domain/model/party"
	"lastmile/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testUser(t *testing.T, id int64) *party.User {
	t.Helper()
	u, err := party.RestoreUser(id, "Asha", "asha@example.com", "34 Lake Rd", "+911111111111")
	require.NoError(t, err)
	return u
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(10, 20, "34 Lake Rd", []string{"dosa"})
	require.NoError(t, err)

	// inventory carries "Dosa", the order asks for "dosa"
	merchant := openMerchant(t, 20, 10)

	orderRepo := new(MockOrderRepository)
	userRepo := new(MockUserRepository)
	merchantRepo := new(MockMerchantRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	uow.On("MerchantRepository").Return(merchantRepo).Once()
	userRepo.On("Get", ctx, int64(10)).Return(testUser(t, 10), nil).Once()
	merchantRepo.On("Get", ctx, int64(20)).Return(merchant, nil).Once()

	var created *order.Order
	orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).
		Run(func(args mock.Arguments) { created = args.Get(1).(*order.Order) }).
		Return(int64(42), nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewCreateOrderCommandHandler(orderCreationUoWFactory{uow: uow})
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(42), result.OrderID)
	assert.Equal(t, "preparing", result.Status)
	require.NotNil(t, created)
	assert.Equal(t, merchant.Address(), created.Source())
	assert.Equal(t, "34 Lake Rd", created.Destination())
}

func TestCreateOrderCommandHandler_Handle_ItemNotInInventory(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(10, 20, "34 Lake Rd", []string{"Dosa", "Idli"})
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	userRepo := new(MockUserRepository)
	merchantRepo := new(MockMerchantRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	uow.On("MerchantRepository").Return(merchantRepo).Once()
	userRepo.On("Get", ctx, int64(10)).Return(testUser(t, 10), nil).Once()
	merchantRepo.On("Get", ctx, int64(20)).Return(openMerchant(t, 20, 10), nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewCreateOrderCommandHandler(orderCreationUoWFactory{uow: uow})
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrItemsNotInInventory)
	orderRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_UserNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(99, 20, "34 Lake Rd", []string{"Dosa"})
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(new(MockOrderRepository)).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	uow.On("MerchantRepository").Return(new(MockMerchantRepository)).Once()
	userRepo.On("Get", ctx, int64(99)).Return(nil, errs.ErrObjectNotFound).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewCreateOrderCommandHandler(orderCreationUoWFactory{uow: uow})
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrUserNotFound)
}

func TestCreateOrderCommandHandler_Handle_MerchantNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(10, 99, "34 Lake Rd", []string{"Dosa"})
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	merchantRepo := new(MockMerchantRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(new(MockOrderRepository)).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	uow.On("MerchantRepository").Return(merchantRepo).Once()
	userRepo.On("Get", ctx, int64(10)).Return(testUser(t, 10), nil).Once()
	merchantRepo.On("Get", ctx, int64(99)).Return(nil, errs.ErrObjectNotFound).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewCreateOrderCommandHandler(orderCreationUoWFactory{uow: uow})
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrMerchantNotFound)
}

func TestNewCreateOrderCommand_RequiresItems(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(10, 20, "34 Lake Rd", nil)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrOrderItemsAreRequired)
}
