package commands

import (
	"errors"

	"lastmile/internal/pkg/errs"
	"lastmile/internal/pkg/guard"
)

var (
	ErrUpdateDriverLocationCommandIsNotConstructed = errors.New(
		"UpdateDriverLocationCommand must be created via NewUpdateDriverLocationCommand constructor",
	)
	ErrAddressIsRequired = errs.NewValueIsRequiredError("address")
)

// UpdateDriverLocationCommand moves a driver to the position resolved from a
// free-form address.
type UpdateDriverLocationCommand struct { //nolint:recvcheck //using for validation
	driverID int64
	address  string

	guard guard.ConstructorGuard
}

// NewUpdateDriverLocationCommand creates a command to update a driver's location.
func NewUpdateDriverLocationCommand(driverID int64, address string) (UpdateDriverLocationCommand, error) {
	command := UpdateDriverLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDriverID(driverID),
		command.setAddress(address),
	); err != nil {
		return UpdateDriverLocationCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDriverLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDriverLocationCommandIsNotConstructed)
}

// DriverID returns the driver to update.
func (c UpdateDriverLocationCommand) DriverID() int64 {
	return c.driverID
}

// Address returns the address to resolve.
func (c UpdateDriverLocationCommand) Address() string {
	return c.address
}

func (c *UpdateDriverLocationCommand) setDriverID(driverID int64) error {
	if driverID <= 0 {
		return errs.NewValueIsInvalidError("driverId")
	}

	c.driverID = driverID
	return nil
}

func (c *UpdateDriverLocationCommand) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}

	c.address = address
	return nil
}
