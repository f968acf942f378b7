package commands

import (
	"errors"

	"lastmile/internal/core/domain/model/driver"
	"lastmile/internal/pkg/errs"
	"lastmile/internal/pkg/guard"
)

var ErrUpdateDriverStateCommandIsNotConstructed = errors.New(
	"UpdateDriverStateCommand must be created via NewUpdateDriverStateCommand constructor",
)

// UpdateDriverStateCommand moves a driver into a new operational state.
type UpdateDriverStateCommand struct { //nolint:recvcheck //using for validation
	driverID int64
	state    driver.State

	guard guard.ConstructorGuard
}

// NewUpdateDriverStateCommand creates a command to update a driver's state.
func NewUpdateDriverStateCommand(driverID int64, state driver.State) (UpdateDriverStateCommand, error) {
	command := UpdateDriverStateCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDriverID(driverID),
		command.setState(state),
	); err != nil {
		return UpdateDriverStateCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDriverStateCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDriverStateCommandIsNotConstructed)
}

// DriverID returns the driver to update.
func (c UpdateDriverStateCommand) DriverID() int64 {
	return c.driverID
}

// State returns the target operational state.
func (c UpdateDriverStateCommand) State() driver.State {
	return c.state
}

func (c *UpdateDriverStateCommand) setDriverID(driverID int64) error {
	if driverID <= 0 {
		return errs.NewValueIsInvalidError("driverId")
	}

	c.driverID = driverID
	return nil
}

func (c *UpdateDriverStateCommand) setState(state driver.State) error {
	if !state.IsValid() {
		return errs.NewValueIsInvalidError("state")
	}

	c.state = state
	return nil
}
