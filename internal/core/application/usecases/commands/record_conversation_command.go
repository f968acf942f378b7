package commands

import (
	"encoding/json"
	"errors"

	"lastmile/internal/core/domain/model/incident"
	"lastmile/internal/pkg/guard"
)

var ErrRecordConversationCommandIsNotConstructed = errors.New(
	"RecordConversationCommand must be created via NewRecordConversationCommand constructor",
)

// RecordConversationCommand saves a communication transcript for the audit trail.
type RecordConversationCommand struct { //nolint:recvcheck //using for validation
	transcript string
	orderID    *int64
	metadata   json.RawMessage

	guard guard.ConstructorGuard
}

// NewRecordConversationCommand creates a conversation recording command.
// orderID and metadata may be nil.
func NewRecordConversationCommand(transcript string, orderID *int64, metadata json.RawMessage) (RecordConversationCommand, error) {
	command := RecordConversationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setTranscript(transcript); err != nil {
		return RecordConversationCommand{}, err
	}

	if orderID != nil {
		o := *orderID
		command.orderID = &o
	}
	command.metadata = metadata

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordConversationCommand) Validate() error {
	return c.guard.Validate(ErrRecordConversationCommandIsNotConstructed)
}

// Transcript returns the communication content to save.
func (c RecordConversationCommand) Transcript() string {
	return c.transcript
}

// OrderID returns the related order, or nil.
func (c RecordConversationCommand) OrderID() *int64 {
	return c.orderID
}

// Metadata returns the optional structured context blob.
func (c RecordConversationCommand) Metadata() json.RawMessage {
	return c.metadata
}

func (c *RecordConversationCommand) setTranscript(transcript string) error {
	if transcript == "" {
		return incident.ErrTranscriptIsRequired
	}

	c.transcript = transcript
	return nil
}
