package order

import (
	"errors"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/pkg/errs"
	"lastmile/internal/pkg/guard"
)

// Domain errors for order operations.
var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through a constructor.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrItemsAreRequired is returned when attempting to create an order without items.
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")
	// ErrDriverAlreadyAssigned is returned when assigning a driver to an order that has one.
	ErrDriverAlreadyAssigned = errors.New("order already has an assigned driver")
)

// Order represents a delivery order in the system. It is the aggregate root
// managing the order's addresses, items, ownership, status, and the at-most-one
// assigned driver.
//
// Invariants:
//   - An order references exactly one user and one merchant
//   - An order carries at least one item
//   - At most one driver is assigned at a time; DriverID is nil until assignment
//   - Status values are membership-validated only (caller-driven transitions)
type Order struct {
	// id is the store-assigned identifier
	id int64

	// status is the current lifecycle state
	status Status

	// source is the pickup address (normally the merchant's address)
	source string

	// sourceLocation caches the resolved pickup coordinates, when known
	sourceLocation *kernel.GeoPoint

	// destination is the delivery address
	destination string

	// items are the ordered product names
	items []string

	// userID references the owning customer
	userID int64

	// merchantID references the preparing merchant
	merchantID int64

	// driverID is the assigned driver, nil until assignment
	driverID *int64

	// guard ensures the order was created via a constructor
	guard guard.ConstructorGuard
}

// NewOrder creates a new Order in the preparing status with no assigned driver.
//
// Parameters:
//   - id: store-assigned identifier (0 for not-yet-persisted orders)
//   - userID, merchantID: owning customer and preparing merchant
//   - source: pickup address (may be empty; dispatch then fails explicitly)
//   - destination: delivery address
//   - items: ordered product names (must be non-empty)
func NewOrder(
	id int64,
	userID int64,
	merchantID int64,
	source string,
	destination string,
	items []string,
) (*Order, error) {
	o := &Order{
		status: Preparing,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	o.userID = userID
	o.merchantID = merchantID
	o.source = source
	o.destination = destination
	return o, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
func RestoreOrder(
	id int64,
	status Status,
	userID int64,
	merchantID int64,
	source string,
	sourceLocation *kernel.GeoPoint,
	destination string,
	items []string,
	driverID *int64,
) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setStatus(status),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	if sourceLocation != nil {
		if err := sourceLocation.Validate(); err != nil {
			return nil, err
		}
		loc := *sourceLocation
		o.sourceLocation = &loc
	}

	if driverID != nil {
		d := *driverID
		o.driverID = &d
	}

	o.userID = userID
	o.merchantID = merchantID
	o.source = source
	o.destination = destination
	return o, nil
}

// Validate checks that the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the order's store-assigned identifier.
func (o *Order) ID() int64 {
	return o.id
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// Source returns the pickup address; may be empty.
func (o *Order) Source() string {
	return o.source
}

// SourceLocation returns cached pickup coordinates, or nil if unresolved.
func (o *Order) SourceLocation() *kernel.GeoPoint {
	return o.sourceLocation
}

// Destination returns the delivery address.
func (o *Order) Destination() string {
	return o.destination
}

// Items returns the ordered product names.
func (o *Order) Items() []string {
	return o.items
}

// UserID returns the owning customer's identifier.
func (o *Order) UserID() int64 {
	return o.userID
}

// MerchantID returns the preparing merchant's identifier.
func (o *Order) MerchantID() int64 {
	return o.merchantID
}

// DriverID returns the assigned driver's identifier, or nil if unassigned.
func (o *Order) DriverID() *int64 {
	return o.driverID
}

// AssignDriver sets the order's driver reference.
// Returns ErrDriverAlreadyAssigned if a different driver already holds the order,
// preserving the at-most-one-driver invariant. Re-assigning the same driver is
// an idempotent no-op.
func (o *Order) AssignDriver(driverID int64) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if o.driverID != nil && *o.driverID != driverID {
		return ErrDriverAlreadyAssigned
	}

	o.driverID = &driverID
	return nil
}

// Unassign clears the order's driver reference.
// Reports whether a driver was actually removed.
func (o *Order) Unassign() (bool, error) {
	if err := o.Validate(); err != nil {
		return false, err
	}

	if o.driverID == nil {
		return false, nil
	}

	o.driverID = nil
	return true, nil
}

// ChangeStatus moves the order into the given lifecycle state.
// Only membership in the defined status set is validated; see Status.
func (o *Order) ChangeStatus(status Status) error {
	if err := o.Validate(); err != nil {
		return err
	}
	return o.setStatus(status)
}

// SetSourceLocation caches resolved pickup coordinates on the order.
func (o *Order) SetSourceLocation(location kernel.GeoPoint) error {
	if err := errors.Join(o.Validate(), location.Validate()); err != nil {
		return err
	}

	o.sourceLocation = &location
	return nil
}

func (o *Order) setID(id int64) error {
	if id < 0 {
		return errs.NewValueIsInvalidError("id")
	}
	o.id = id
	return nil
}

func (o *Order) setStatus(status Status) error {
	if !status.IsValid() {
		return errs.NewValueIsInvalidError("status")
	}
	o.status = status
	return nil
}

func (o *Order) setItems(items []string) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	o.items = items
	return nil
}
