package commands_test

import (
	"encoding/json"
	"testing"

	"lastmile/internal/core/application/usecases/commands"
	"lastmile/internal/core/domain/model/incident"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRecordConversationCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := int64(17)
	metadata := json.RawMessage(`{"channel":"voice"}`)
	cmd, err := commands.NewRecordConversationCommand("customer: the package never arrived", &orderID, metadata)
	require.NoError(t, err)

	conversationRepo := new(MockConversationRepository)
	uow := new(MockUoW)

	var saved *incident.Conversation
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ConversationRepository").Return(conversationRepo).Once()
	conversationRepo.On("Add", ctx, mock.AnythingOfType("*incident.Conversation")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*incident.Conversation) }).
		Return(int64(41), nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewRecordConversationCommandHandler(conversationUoWFactory{uow: uow})
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(41), result.ConversationID)
	require.NotNil(t, saved)
	assert.Equal(t, "customer: the package never arrived", saved.Transcript())
	require.NotNil(t, saved.OrderID())
	assert.Equal(t, int64(17), *saved.OrderID())
	assert.JSONEq(t, `{"channel":"voice"}`, string(saved.Metadata()))
	uow.AssertExpectations(t)
}

func TestRecordConversationCommandHandler_Handle_StandaloneTranscript(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRecordConversationCommand("merchant called about packaging", nil, nil)
	require.NoError(t, err)

	conversationRepo := new(MockConversationRepository)
	uow := new(MockUoW)

	var saved *incident.Conversation
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ConversationRepository").Return(conversationRepo).Once()
	conversationRepo.On("Add", ctx, mock.AnythingOfType("*incident.Conversation")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*incident.Conversation) }).
		Return(int64(42), nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewRecordConversationCommandHandler(conversationUoWFactory{uow: uow})
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(42), result.ConversationID)
	require.NotNil(t, saved)
	assert.Nil(t, saved.OrderID())
}

func TestRecordConversationCommandHandler_Handle_AddFailure(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRecordConversationCommand("anything", nil, nil)
	require.NoError(t, err)

	conversationRepo := new(MockConversationRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ConversationRepository").Return(conversationRepo).Once()
	conversationRepo.On("Add", ctx, mock.AnythingOfType("*incident.Conversation")).Return(int64(0), assert.AnError).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewRecordConversationCommandHandler(conversationUoWFactory{uow: uow})
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestNewRecordConversationCommand_RequiresTranscript(t *testing.T) {
	_, err := commands.NewRecordConversationCommand("", nil, nil)

	require.Error(t, err)
	require.ErrorIs(t, err, incident.ErrTranscriptIsRequired)
}
