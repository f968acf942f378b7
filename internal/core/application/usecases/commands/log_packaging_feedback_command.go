package commands

import (
	"errors"

	"lastmile/internal/pkg/errs"
	"lastmile/internal/pkg/guard"
)

var (
	ErrLogPackagingFeedbackCommandIsNotConstructed = errors.New(
		"LogPackagingFeedbackCommand must be created via NewLogPackagingFeedbackCommand constructor",
	)
	ErrFeedbackIsRequired = errs.NewValueIsRequiredError("feedback")
)

// LogPackagingFeedbackCommand records packaging feedback for a merchant.
type LogPackagingFeedbackCommand struct { //nolint:recvcheck //using for validation
	merchantID int64
	orderID    *int64
	feedback   string

	guard guard.ConstructorGuard
}

// NewLogPackagingFeedbackCommand creates a packaging feedback command.
// orderID may be nil.
func NewLogPackagingFeedbackCommand(merchantID int64, orderID *int64, feedback string) (LogPackagingFeedbackCommand, error) {
	command := LogPackagingFeedbackCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setMerchantID(merchantID),
		command.setFeedback(feedback),
	); err != nil {
		return LogPackagingFeedbackCommand{}, err
	}

	if orderID != nil {
		o := *orderID
		command.orderID = &o
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c LogPackagingFeedbackCommand) Validate() error {
	return c.guard.Validate(ErrLogPackagingFeedbackCommandIsNotConstructed)
}

// MerchantID returns the merchant the feedback concerns.
func (c LogPackagingFeedbackCommand) MerchantID() int64 {
	return c.merchantID
}

// OrderID returns the originating order, or nil.
func (c LogPackagingFeedbackCommand) OrderID() *int64 {
	return c.orderID
}

// Feedback returns the packaging note.
func (c LogPackagingFeedbackCommand) Feedback() string {
	return c.feedback
}

func (c *LogPackagingFeedbackCommand) setMerchantID(merchantID int64) error {
	if merchantID <= 0 {
		return errs.NewValueIsInvalidError("merchantId")
	}

	c.merchantID = merchantID
	return nil
}

func (c *LogPackagingFeedbackCommand) setFeedback(feedback string) error {
	if feedback == "" {
		return ErrFeedbackIsRequired
	}

	c.feedback = feedback
	return nil
}
