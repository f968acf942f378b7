package commands

import (
	"errors"

	"lastmile/internal/pkg/errs"
	"lastmile/internal/pkg/guard"
)

var ErrContactRecipientCommandIsNotConstructed = errors.New(
	"ContactRecipientCommand must be created via NewContactRecipientCommand constructor",
)

// ContactRecipientCommand sends a chat message to a delivery recipient.
type ContactRecipientCommand struct { //nolint:recvcheck //using for validation
	recipientID string
	message     string

	guard guard.ConstructorGuard
}

// NewContactRecipientCommand creates a recipient chat command.
func NewContactRecipientCommand(recipientID string, message string) (ContactRecipientCommand, error) {
	command := ContactRecipientCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRecipientID(recipientID),
		command.setMessage(message),
	); err != nil {
		return ContactRecipientCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ContactRecipientCommand) Validate() error {
	return c.guard.Validate(ErrContactRecipientCommandIsNotConstructed)
}

// RecipientID returns the recipient's identifier in the chat channel.
func (c ContactRecipientCommand) RecipientID() string {
	return c.recipientID
}

// Message returns the chat message body.
func (c ContactRecipientCommand) Message() string {
	return c.message
}

func (c *ContactRecipientCommand) setRecipientID(recipientID string) error {
	if recipientID == "" {
		return errs.NewValueIsRequiredError("recipientId")
	}

	c.recipientID = recipientID
	return nil
}

func (c *ContactRecipientCommand) setMessage(message string) error {
	if message == "" {
		return ErrMessageIsRequired
	}

	c.message = message
	return nil
}
