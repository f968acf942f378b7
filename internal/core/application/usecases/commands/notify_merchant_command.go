package commands

import (
	"errors"

	"lastmile/internal/pkg/errs"
	"lastmile/internal/pkg/guard"
)

var ErrNotifyMerchantCommandIsNotConstructed = errors.New(
	"NotifyMerchantCommand must be created via NewNotifyMerchantCommand constructor",
)

// NotifyMerchantCommand sends an email to a merchant.
type NotifyMerchantCommand struct { //nolint:recvcheck //using for validation
	merchantID int64
	subject    string
	message    string

	guard guard.ConstructorGuard
}

// NewNotifyMerchantCommand creates a merchant notification command.
func NewNotifyMerchantCommand(merchantID int64, subject, message string) (NotifyMerchantCommand, error) {
	command := NotifyMerchantCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setMerchantID(merchantID),
		command.setMessage(message),
	); err != nil {
		return NotifyMerchantCommand{}, err
	}

	if subject == "" {
		subject = "Order update"
	}
	command.subject = subject

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c NotifyMerchantCommand) Validate() error {
	return c.guard.Validate(ErrNotifyMerchantCommandIsNotConstructed)
}

// MerchantID returns the merchant to notify.
func (c NotifyMerchantCommand) MerchantID() int64 {
	return c.merchantID
}

// Subject returns the email subject.
func (c NotifyMerchantCommand) Subject() string {
	return c.subject
}

// Message returns the email body.
func (c NotifyMerchantCommand) Message() string {
	return c.message
}

func (c *NotifyMerchantCommand) setMerchantID(merchantID int64) error {
	if merchantID <= 0 {
		return errs.NewValueIsInvalidError("merchantId")
	}

	c.merchantID = merchantID
	return nil
}

func (c *NotifyMerchantCommand) setMessage(message string) error {
	if message == "" {
		return ErrMessageIsRequired
	}

	c.message = message
	return nil
}
