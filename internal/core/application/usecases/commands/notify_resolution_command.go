package commands

import (
	"errors"

	"lastmile/internal/pkg/errs"
	"lastmile/internal/pkg/guard"
)

var ErrNotifyResolutionCommandIsNotConstructed = errors.New(
	"NotifyResolutionCommand must be created via NewNotifyResolutionCommand constructor",
)

// NotifyResolutionCommand sends a resolution SMS to every party on an order
// that has a phone number.
type NotifyResolutionCommand struct { //nolint:recvcheck //using for validation
	orderID int64
	message string

	guard guard.ConstructorGuard
}

// NewNotifyResolutionCommand creates a resolution notification command.
func NewNotifyResolutionCommand(orderID int64, message string) (NotifyResolutionCommand, error) {
	command := NotifyResolutionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setMessage(message),
	); err != nil {
		return NotifyResolutionCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c NotifyResolutionCommand) Validate() error {
	return c.guard.Validate(ErrNotifyResolutionCommandIsNotConstructed)
}

// OrderID returns the resolved order.
func (c NotifyResolutionCommand) OrderID() int64 {
	return c.orderID
}

// Message returns the resolution text.
func (c NotifyResolutionCommand) Message() string {
	return c.message
}

func (c *NotifyResolutionCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidError("orderId")
	}

	c.orderID = orderID
	return nil
}

func (c *NotifyResolutionCommand) setMessage(message string) error {
	if message == "" {
		return ErrMessageIsRequired
	}

	c.message = message
	return nil
}
