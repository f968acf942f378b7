package party

import (
	"errors"
	"fmt"
	"strings"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/pkg/errs"
	"lastmile/internal/pkg/guard"
)

// MerchantStatus indicates whether a merchant currently accepts orders.
type MerchantStatus int

const (
	// MerchantStatusUnknown represents an invalid or undefined status.
	MerchantStatusUnknown MerchantStatus = iota

	// MerchantOpen means the merchant accepts and prepares orders.
	MerchantOpen

	// MerchantClosed means the merchant is not accepting orders.
	MerchantClosed
)

func merchantStatusStrings() map[MerchantStatus]string {
	return map[MerchantStatus]string{
		MerchantStatusUnknown: "unknown",
		MerchantOpen:          "open",
		MerchantClosed:        "closed",
	}
}

// String returns the lowercase wire representation of the status.
func (s MerchantStatus) String() string {
	if name, ok := merchantStatusStrings()[s]; ok {
		return name
	}
	return fmt.Sprintf("MerchantStatus(%d)", int(s))
}

// IsValid reports whether the status is one of the defined values.
func (s MerchantStatus) IsValid() bool {
	switch s {
	case MerchantOpen, MerchantClosed:
		return true
	default:
		return false
	}
}

// ParseMerchantStatus converts a wire string into a MerchantStatus.
func ParseMerchantStatus(value string) (MerchantStatus, error) {
	for status, name := range merchantStatusStrings() {
		if status != MerchantStatusUnknown && name == value {
			return status, nil
		}
	}
	return MerchantStatusUnknown, errs.NewValueIsInvalidError("merchant status")
}

// Domain errors for merchant operations.
var (
	// ErrMerchantIsNotConstructed is returned when a Merchant was not created through a constructor.
	ErrMerchantIsNotConstructed = errors.New("Merchant must be created via RestoreMerchant constructor")
	// ErrMerchantNameIsRequired is returned when restoring a merchant without a name.
	ErrMerchantNameIsRequired = errs.NewValueIsRequiredError("name")
)

// Merchant is a seller whose inventory and address drive order creation.
// Merchants are provisioned outside this system; the record is read-only here.
type Merchant struct {
	// id is the store-assigned identifier
	id int64

	// name is the merchant's display name
	name string

	// email is the contact address, may be empty
	email string

	// phone is the SMS number, may be empty
	phone string

	// address is the pickup address for the merchant's orders
	address string

	// location caches the resolved pickup coordinates, when known
	location *kernel.GeoPoint

	// inventory is the list of item names the merchant carries
	inventory []string

	// prepMinutes is the merchant's typical preparation time
	prepMinutes int

	// status indicates whether the merchant currently accepts orders
	status MerchantStatus

	// guard ensures the merchant was created via a constructor
	guard guard.ConstructorGuard
}

// RestoreMerchant reconstructs a Merchant record from persistent storage.
func RestoreMerchant(
	id int64,
	name string,
	email string,
	phone string,
	address string,
	location *kernel.GeoPoint,
	inventory []string,
	prepMinutes int,
	status MerchantStatus,
) (*Merchant, error) {
	m := &Merchant{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setID(id),
		m.setName(name),
		m.setStatus(status),
	); err != nil {
		return nil, err
	}

	if location != nil {
		if err := location.Validate(); err != nil {
			return nil, err
		}
		loc := *location
		m.location = &loc
	}

	m.email = email
	m.phone = phone
	m.address = address
	m.inventory = inventory
	m.prepMinutes = prepMinutes
	return m, nil
}

// Validate checks that the Merchant was created through a constructor.
func (m *Merchant) Validate() error {
	if m == nil {
		return ErrMerchantIsNotConstructed
	}
	return m.guard.Validate(ErrMerchantIsNotConstructed)
}

// ID returns the merchant's store-assigned identifier.
func (m *Merchant) ID() int64 {
	return m.id
}

// Name returns the merchant's display name.
func (m *Merchant) Name() string {
	return m.name
}

// Email returns the contact address; may be empty.
func (m *Merchant) Email() string {
	return m.email
}

// Phone returns the SMS number; may be empty.
func (m *Merchant) Phone() string {
	return m.phone
}

// Address returns the pickup address for the merchant's orders.
func (m *Merchant) Address() string {
	return m.address
}

// Location returns cached pickup coordinates, or nil if unresolved.
func (m *Merchant) Location() *kernel.GeoPoint {
	return m.location
}

// Inventory returns the item names the merchant carries.
func (m *Merchant) Inventory() []string {
	return m.inventory
}

// PrepMinutes returns the merchant's typical preparation time.
func (m *Merchant) PrepMinutes() int {
	return m.prepMinutes
}

// Status returns whether the merchant currently accepts orders.
func (m *Merchant) Status() MerchantStatus {
	return m.status
}

// IsOpen reports whether the merchant currently accepts orders.
func (m *Merchant) IsOpen() bool {
	return m.status == MerchantOpen
}

// CarriesAll reports whether every requested item is present in the merchant's
// inventory, compared case-insensitively.
func (m *Merchant) CarriesAll(items []string) bool {
	stocked := make(map[string]struct{}, len(m.inventory))
	for _, item := range m.inventory {
		stocked[strings.ToLower(item)] = struct{}{}
	}

	for _, item := range items {
		if _, ok := stocked[strings.ToLower(item)]; !ok {
			return false
		}
	}
	return true
}

func (m *Merchant) setID(id int64) error {
	if id < 0 {
		return errs.NewValueIsInvalidError("id")
	}
	m.id = id
	return nil
}

func (m *Merchant) setName(name string) error {
	if name == "" {
		return ErrMerchantNameIsRequired
	}
	m.name = name
	return nil
}

func (m *Merchant) setStatus(status MerchantStatus) error {
	if !status.IsValid() {
		return errs.NewValueIsInvalidError("status")
	}
	m.status = status
	return nil
}
