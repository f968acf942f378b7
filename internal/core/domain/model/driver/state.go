package driver

import (
	"fmt"

	"lastmile/internal/pkg/errs"
)

// State represents the operational state of a driver.
// Drivers move between states through explicit state-update operations and
// through dispatch, which claims an idle driver by switching it to enroute.
// No transition table is enforced: operators may correct a driver's state
// directly, so every valid state is reachable from every other.
type State int

const (
	// StateUnknown represents an invalid or undefined state.
	// This value (0) helps catch uninitialized State values.
	StateUnknown State = iota

	// Idle means the driver is available for new assignments.
	Idle

	// Enroute means the driver is traveling to a pickup location.
	Enroute

	// Delivering means the driver is carrying an order to its destination.
	Delivering

	// Offline means the driver is not working and must not be assigned.
	Offline
)

func stateStrings() map[State]string {
	return map[State]string{
		StateUnknown: "unknown",
		Idle:         "idle",
		Enroute:      "enroute",
		Delivering:   "delivering",
		Offline:      "offline",
	}
}

// String returns the lowercase wire representation of the state.
func (s State) String() string {
	if name, ok := stateStrings()[s]; ok {
		return name
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// IsValid reports whether the state is one of the defined operational states.
func (s State) IsValid() bool {
	return s == Idle || s == Enroute || s == Delivering || s == Offline
}

// ParseState converts a wire string into a State.
// Returns a validation error for anything outside the defined set.
func ParseState(value string) (State, error) {
	for state, name := range stateStrings() {
		if state != StateUnknown && name == value {
			return state, nil
		}
	}
	return StateUnknown, errs.NewValueIsInvalidError("state")
}
