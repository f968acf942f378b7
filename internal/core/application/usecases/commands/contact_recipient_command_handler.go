package commands

import (
	"context"
	"encoding/json"
	"time"

	"lastmile/internal/core/domain/model/incident"
)

// ContactRecipientResult reports a delivered chat message.
type ContactRecipientResult struct {
	ConversationID int64 `json:"conversationId"`
	MessageSent    bool  `json:"messageSent"`
}

// ContactRecipientCommandHandler delivers a chat message to a recipient and
// keeps the exchange as a conversation record.
type ContactRecipientCommandHandler struct {
	uowFactory ConversationUoWFactory
}

// NewContactRecipientCommandHandler creates a handler for recipient chat.
func NewContactRecipientCommandHandler(uowFactory ConversationUoWFactory) ContactRecipientCommandHandler {
	return ContactRecipientCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the recipient chat command.
func (h ContactRecipientCommandHandler) Handle(ctx context.Context, command ContactRecipientCommand) (ContactRecipientResult, error) {
	if err := command.Validate(); err != nil {
		return ContactRecipientResult{}, err
	}

	metadata, err := json.Marshal(map[string]string{"recipientId": command.RecipientID()})
	if err != nil {
		return ContactRecipientResult{}, err
	}

	record, err := incident.NewConversation(0, nil, command.Message(), metadata, time.Now().UTC())
	if err != nil {
		return ContactRecipientResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ContactRecipientResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	conversationID, err := uow.ConversationRepository().Add(ctx, record)
	if err != nil {
		return ContactRecipientResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ContactRecipientResult{}, err
	}

	return ContactRecipientResult{
		ConversationID: conversationID,
		MessageSent:    true,
	}, nil
}
