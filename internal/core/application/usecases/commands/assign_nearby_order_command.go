package commands

import (
	"errors"

	"lastmile/internal/pkg/errs"
	"lastmile/internal/pkg/guard"
)

var ErrAssignNearbyOrderCommandIsNotConstructed = errors.New(
	"AssignNearbyOrderCommand must be created via NewAssignNearbyOrderCommand constructor",
)

// DefaultMaxDistanceKm is the search radius used when the caller does not
// supply one.
const DefaultMaxDistanceKm = 5.0

// AssignNearbyOrderCommand requests that an enroute driver pick up an
// additional order prepared near their route, when one can be added without
// delaying the delivery underway.
type AssignNearbyOrderCommand struct { //nolint:recvcheck //using for validation
	driverID           int64
	currentPrepMinutes int
	maxDistanceKm      float64

	guard guard.ConstructorGuard
}

// NewAssignNearbyOrderCommand creates a nearby-order reassignment command.
// A non-positive maxDistanceKm falls back to DefaultMaxDistanceKm.
func NewAssignNearbyOrderCommand(driverID int64, currentPrepMinutes int, maxDistanceKm float64) (AssignNearbyOrderCommand, error) {
	command := AssignNearbyOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDriverID(driverID),
		command.setCurrentPrepMinutes(currentPrepMinutes),
	); err != nil {
		return AssignNearbyOrderCommand{}, err
	}

	if maxDistanceKm <= 0 {
		maxDistanceKm = DefaultMaxDistanceKm
	}
	command.maxDistanceKm = maxDistanceKm

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignNearbyOrderCommandIsNotConstructed if validation fails.
func (c AssignNearbyOrderCommand) Validate() error {
	return c.guard.Validate(ErrAssignNearbyOrderCommandIsNotConstructed)
}

// DriverID returns the driver considering an additional pickup.
func (c AssignNearbyOrderCommand) DriverID() int64 {
	return c.driverID
}

// CurrentPrepMinutes returns the preparation time of the driver's current order.
func (c AssignNearbyOrderCommand) CurrentPrepMinutes() int {
	return c.currentPrepMinutes
}

// MaxDistanceKm returns the pickup search radius.
func (c AssignNearbyOrderCommand) MaxDistanceKm() float64 {
	return c.maxDistanceKm
}

func (c *AssignNearbyOrderCommand) setDriverID(driverID int64) error {
	if driverID <= 0 {
		return errs.NewValueIsInvalidError("driverId")
	}

	c.driverID = driverID
	return nil
}

func (c *AssignNearbyOrderCommand) setCurrentPrepMinutes(minutes int) error {
	if minutes < 0 {
		return errs.NewValueIsInvalidError("currentPrepMinutes")
	}

	c.currentPrepMinutes = minutes
	return nil
}
