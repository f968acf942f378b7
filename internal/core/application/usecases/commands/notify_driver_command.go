package commands

import (
	"errors"

	"lastmile/internal/pkg/errs"
	"lastmile/internal/pkg/guard"
)

var ErrNotifyDriverCommandIsNotConstructed = errors.New(
	"NotifyDriverCommand must be created via NewNotifyDriverCommand constructor",
)

// NotifyDriverCommand texts a driver about assignments or route changes.
type NotifyDriverCommand struct { //nolint:recvcheck //using for validation
	driverID int64
	message  string

	guard guard.ConstructorGuard
}

// NewNotifyDriverCommand creates a driver notification command.
func NewNotifyDriverCommand(driverID int64, message string) (NotifyDriverCommand, error) {
	command := NotifyDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDriverID(driverID),
		command.setMessage(message),
	); err != nil {
		return NotifyDriverCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c NotifyDriverCommand) Validate() error {
	return c.guard.Validate(ErrNotifyDriverCommandIsNotConstructed)
}

// DriverID returns the driver to notify.
func (c NotifyDriverCommand) DriverID() int64 {
	return c.driverID
}

// Message returns the SMS body.
func (c NotifyDriverCommand) Message() string {
	return c.message
}

func (c *NotifyDriverCommand) setDriverID(driverID int64) error {
	if driverID <= 0 {
		return errs.NewValueIsInvalidError("driverId")
	}

	c.driverID = driverID
	return nil
}

func (c *NotifyDriverCommand) setMessage(message string) error {
	if message == "" {
		return ErrMessageIsRequired
	}

	c.message = message
	return nil
}
