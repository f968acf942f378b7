package commands

import (
	"context"
	"time"

	"lastmile/internal/core/domain/model/incident"
)

// RecordConversationResult reports a saved conversation record.
type RecordConversationResult struct {
	ConversationID int64 `json:"conversationId"`
}

// RecordConversationCommandHandler appends a conversation transcript row.
type RecordConversationCommandHandler struct {
	uowFactory ConversationUoWFactory
}

// NewRecordConversationCommandHandler creates a handler for conversation recording.
func NewRecordConversationCommandHandler(uowFactory ConversationUoWFactory) RecordConversationCommandHandler {
	return RecordConversationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the conversation recording command.
func (h RecordConversationCommandHandler) Handle(ctx context.Context, command RecordConversationCommand) (RecordConversationResult, error) {
	if err := command.Validate(); err != nil {
		return RecordConversationResult{}, err
	}

	record, err := incident.NewConversation(
		0,
		command.OrderID(),
		command.Transcript(),
		command.Metadata(),
		time.Now().UTC(),
	)
	if err != nil {
		return RecordConversationResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return RecordConversationResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	conversationID, err := uow.ConversationRepository().Add(ctx, record)
	if err != nil {
		return RecordConversationResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return RecordConversationResult{}, err
	}

	return RecordConversationResult{ConversationID: conversationID}, nil
}
