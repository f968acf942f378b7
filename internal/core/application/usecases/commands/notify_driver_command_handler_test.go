package commands_test

import (
	"testing"

	"lastmile/internal/core/application/usecases/commands"
	"lastmile/internal/core/domain/model/driver"
	"lastmile/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifyDriverCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewNotifyDriverCommand(7, "New pickup at 12 Market St")
	require.NoError(t, err)

	testDriver, err := driver.RestoreDriver(7, "Ravi", "+913333333333", driver.Idle, nil)
	require.NoError(t, err)

	driverRepo := new(MockDriverRepository)
	sms := new(MockSMSSender)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DriverRepository").Return(driverRepo).Once()
	driverRepo.On("Get", ctx, int64(7)).Return(testDriver, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	sms.On("Send", ctx, "+913333333333", "New pickup at 12 Market St").Return(nil).Once()

	handler := commands.NewNotifyDriverCommandHandler(driverUoWFactory{uow: uow}, sms)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(7), result.DriverID)
	assert.True(t, result.Sent)
	sms.AssertExpectations(t)
}

func TestNotifyDriverCommandHandler_Handle_DriverNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewNotifyDriverCommand(99, "New pickup")
	require.NoError(t, err)

	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DriverRepository").Return(driverRepo).Once()
	driverRepo.On("Get", ctx, int64(99)).Return(nil, errs.ErrObjectNotFound).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewNotifyDriverCommandHandler(driverUoWFactory{uow: uow}, new(MockSMSSender))
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrDriverNotFound)
}

func TestNotifyDriverCommandHandler_Handle_ContactMissing(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewNotifyDriverCommand(7, "New pickup")
	require.NoError(t, err)

	phoneless, err := driver.RestoreDriver(7, "Ravi", "", driver.Idle, nil)
	require.NoError(t, err)

	driverRepo := new(MockDriverRepository)
	sms := new(MockSMSSender)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DriverRepository").Return(driverRepo).Once()
	driverRepo.On("Get", ctx, int64(7)).Return(phoneless, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewNotifyDriverCommandHandler(driverUoWFactory{uow: uow}, sms)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrContactMissing)
	sms.AssertNotCalled(t, "Send")
}

func TestNotifyDriverCommandHandler_Handle_SendFailure(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewNotifyDriverCommand(7, "New pickup")
	require.NoError(t, err)

	testDriver, err := driver.RestoreDriver(7, "Ravi", "+913333333333", driver.Idle, nil)
	require.NoError(t, err)

	driverRepo := new(MockDriverRepository)
	sms := new(MockSMSSender)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DriverRepository").Return(driverRepo).Once()
	driverRepo.On("Get", ctx, int64(7)).Return(testDriver, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	sms.On("Send", ctx, "+913333333333", "New pickup").Return(assert.AnError).Once()

	handler := commands.NewNotifyDriverCommandHandler(driverUoWFactory{uow: uow}, sms)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrNotificationFailed)
}

func TestNewNotifyDriverCommand_RequiresMessage(t *testing.T) {
	_, err := commands.NewNotifyDriverCommand(7, "")

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrMessageIsRequired)
}
