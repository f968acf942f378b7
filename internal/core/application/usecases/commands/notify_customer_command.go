package commands

import (
	"errors"

	"lastmile/internal/pkg/errs"
	"lastmile/internal/pkg/guard"
)

var (
	ErrNotifyCustomerCommandIsNotConstructed = errors.New(
		"NotifyCustomerCommand must be created via NewNotifyCustomerCommand constructor",
	)
	ErrMessageIsRequired = errs.NewValueIsRequiredError("message")
)

// NotifyCustomerCommand sends an email to a customer.
type NotifyCustomerCommand struct { //nolint:recvcheck //using for validation
	userID  int64
	subject string
	message string

	guard guard.ConstructorGuard
}

// NewNotifyCustomerCommand creates a customer notification command.
func NewNotifyCustomerCommand(userID int64, subject, message string) (NotifyCustomerCommand, error) {
	command := NotifyCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setUserID(userID),
		command.setMessage(message),
	); err != nil {
		return NotifyCustomerCommand{}, err
	}

	if subject == "" {
		subject = "Delivery update"
	}
	command.subject = subject

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c NotifyCustomerCommand) Validate() error {
	return c.guard.Validate(ErrNotifyCustomerCommandIsNotConstructed)
}

// UserID returns the customer to notify.
func (c NotifyCustomerCommand) UserID() int64 {
	return c.userID
}

// Subject returns the email subject.
func (c NotifyCustomerCommand) Subject() string {
	return c.subject
}

// Message returns the email body.
func (c NotifyCustomerCommand) Message() string {
	return c.message
}

func (c *NotifyCustomerCommand) setUserID(userID int64) error {
	if userID <= 0 {
		return errs.NewValueIsInvalidError("userId")
	}

	c.userID = userID
	return nil
}

func (c *NotifyCustomerCommand) setMessage(message string) error {
	if message == "" {
		return ErrMessageIsRequired
	}

	c.message = message
	return nil
}
