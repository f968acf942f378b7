package incident

import (
	"encoding/json"
	"errors"
	"time"

	"lastmile/internal/pkg/errs"
	"lastmile/internal/pkg/guard"
)

// Domain errors for conversation operations.
var (
	// ErrConversationIsNotConstructed is returned when a Conversation was not created through a constructor.
	ErrConversationIsNotConstructed = errors.New("Conversation must be created via NewConversation constructor")
	// ErrTranscriptIsRequired is returned when attempting to record a conversation without a transcript.
	ErrTranscriptIsRequired = errs.NewValueIsRequiredError("transcript")
)

// Conversation is a saved communication transcript kept for dispute
// resolution and support audit trails. The record is immutable once created.
type Conversation struct {
	// id is the store-assigned identifier
	id int64

	// orderID references the order the conversation relates to, nil when standalone
	orderID *int64

	// transcript is the full communication content
	transcript string

	// metadata is a serialized JSON context blob (participants, channel), may be nil
	metadata json.RawMessage

	// createdAt is when the conversation was recorded
	createdAt time.Time

	// guard ensures the conversation was created via a constructor
	guard guard.ConstructorGuard
}

// NewConversation creates a new Conversation record.
// orderID and metadata may be nil.
func NewConversation(
	id int64,
	orderID *int64,
	transcript string,
	metadata json.RawMessage,
	createdAt time.Time,
) (*Conversation, error) {
	c := &Conversation{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setTranscript(transcript),
	); err != nil {
		return nil, err
	}

	if orderID != nil {
		o := *orderID
		c.orderID = &o
	}
	if metadata != nil {
		c.metadata = append(json.RawMessage(nil), metadata...)
	}

	c.createdAt = createdAt
	return c, nil
}

// RestoreConversation reconstructs a Conversation record from persistent storage.
func RestoreConversation(
	id int64,
	orderID *int64,
	transcript string,
	metadata json.RawMessage,
	createdAt time.Time,
) (*Conversation, error) {
	return NewConversation(id, orderID, transcript, metadata, createdAt)
}

// Validate checks that the Conversation was created through a constructor.
func (c *Conversation) Validate() error {
	if c == nil {
		return ErrConversationIsNotConstructed
	}
	return c.guard.Validate(ErrConversationIsNotConstructed)
}

// ID returns the conversation's store-assigned identifier.
func (c *Conversation) ID() int64 {
	return c.id
}

// OrderID returns the related order's identifier, or nil.
func (c *Conversation) OrderID() *int64 {
	return c.orderID
}

// Transcript returns the full communication content.
func (c *Conversation) Transcript() string {
	return c.transcript
}

// Metadata returns the serialized JSON context blob, or nil.
func (c *Conversation) Metadata() json.RawMessage {
	return c.metadata
}

// CreatedAt returns when the conversation was recorded.
func (c *Conversation) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Conversation) setID(id int64) error {
	if id < 0 {
		return errs.NewValueIsInvalidError("id")
	}
	c.id = id
	return nil
}

func (c *Conversation) setTranscript(transcript string) error {
	if transcript == "" {
		return ErrTranscriptIsRequired
	}
	c.transcript = transcript
	return nil
}
