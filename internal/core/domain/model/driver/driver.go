package driver

import (
	"errors"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/pkg/errs"
	"lastmile/internal/pkg/guard"
)

// Domain errors for driver operations.
var (
	// ErrNameIsRequired is returned when attempting to create a driver without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrDriverIsNotConstructed is returned when using an improperly initialized Driver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")
)

// Driver represents a delivery driver in the system.
// It is an aggregate root that manages driver identity, current position, and
// operational state.
//
// Business rules:
//   - A driver must have a non-empty name
//   - The location is unknown (nil) until the first location update
//   - Only an idle driver with a known location is eligible for dispatch
//   - State changes are unrestricted within the defined state set; claiming an
//     idle driver for dispatch is done atomically at the persistence layer
type Driver struct {
	// id uniquely identifies the driver; assigned by the store on creation
	id int64
	// name is the human-readable name of the driver
	name string
	// phone is the driver's contact number, used for resolution notifications
	phone string
	// location is the last reported position; nil until first update
	location *kernel.GeoPoint
	// state is the current operational state
	state State
	// guard ensures the driver was properly constructed
	guard guard.ConstructorGuard
}

// NewDriver creates a new Driver in the offline state with no known location.
// Drivers come online and become dispatchable once they report a location and
// switch to idle.
//
// Parameters:
//   - id: store-assigned identifier (0 for not-yet-persisted drivers)
//   - name: human-readable name (must be non-empty)
//   - phone: contact number (may be empty; notifications skip such drivers)
func NewDriver(id int64, name string, phone string) (*Driver, error) {
	d := &Driver{
		state: Offline,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
	); err != nil {
		return nil, err
	}

	d.phone = phone
	return d, nil
}

// RestoreDriver reconstructs a Driver aggregate from persistent storage,
// preserving its persisted state and location.
func RestoreDriver(id int64, name string, phone string, state State, location *kernel.GeoPoint) (*Driver, error) {
	d := &Driver{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setState(state),
	); err != nil {
		return nil, err
	}

	if location != nil {
		if err := location.Validate(); err != nil {
			return nil, err
		}
		loc := *location
		d.location = &loc
	}

	d.phone = phone
	return d, nil
}

// Validate checks that the Driver was created through a constructor.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// IsEqual compares two drivers by identifier.
func (d *Driver) IsEqual(other *Driver) bool {
	if other == nil {
		return false
	}
	return d.id == other.id
}

// ID returns the driver's store-assigned identifier.
func (d *Driver) ID() int64 {
	return d.id
}

// Name returns the driver's name.
func (d *Driver) Name() string {
	return d.name
}

// Phone returns the driver's contact number; may be empty.
func (d *Driver) Phone() string {
	return d.phone
}

// State returns the current operational state.
func (d *Driver) State() State {
	return d.state
}

// Location returns the driver's last reported position, or nil if unknown.
func (d *Driver) Location() *kernel.GeoPoint {
	return d.location
}

// IsDispatchable reports whether the driver can receive a new assignment:
// idle with a known location.
func (d *Driver) IsDispatchable() bool {
	return d.state == Idle && d.location != nil
}

// ChangeState moves the driver into the given state.
// Any valid state is accepted; see the State documentation.
func (d *Driver) ChangeState(state State) error {
	if err := d.Validate(); err != nil {
		return err
	}
	return d.setState(state)
}

// MoveTo updates the driver's last reported position.
func (d *Driver) MoveTo(location kernel.GeoPoint) error {
	if err := errors.Join(d.Validate(), location.Validate()); err != nil {
		return err
	}

	d.location = &location
	return nil
}

func (d *Driver) setID(id int64) error {
	if id < 0 {
		return errs.NewValueIsInvalidError("id")
	}
	d.id = id
	return nil
}

func (d *Driver) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	d.name = name
	return nil
}

func (d *Driver) setState(state State) error {
	if !state.IsValid() {
		return errs.NewValueIsInvalidError("state")
	}
	d.state = state
	return nil
}
