package party

import (
	"errors"

	"lastmile/internal/pkg/errs"
	"lastmile/internal/pkg/guard"
)

// Domain errors for user operations.
var (
	// ErrUserIsNotConstructed is returned when a User was not created through a constructor.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")
	// ErrUserNameIsRequired is returned when attempting to create a user without a name.
	ErrUserNameIsRequired = errs.NewValueIsRequiredError("name")
)

// User is a customer on whose behalf orders are placed. Contact fields are
// optional; notification handlers check for them explicitly and fail with a
// missing-contact error rather than sending to an empty address.
type User struct {
	// id is the store-assigned identifier
	id int64

	// name is the customer's display name
	name string

	// email is the notification address, may be empty
	email string

	// address is the default delivery address, may be empty
	address string

	// phone is the SMS number, may be empty
	phone string

	// guard ensures the user was created via a constructor
	guard guard.ConstructorGuard
}

// NewUser creates a new User record.
func NewUser(id int64, name, email, address, phone string) (*User, error) {
	u := &User{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setName(name),
	); err != nil {
		return nil, err
	}

	u.email = email
	u.address = address
	u.phone = phone
	return u, nil
}

// RestoreUser reconstructs a User record from persistent storage.
func RestoreUser(id int64, name, email, address, phone string) (*User, error) {
	return NewUser(id, name, email, address, phone)
}

// Validate checks that the User was created through a constructor.
func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

// ID returns the user's store-assigned identifier.
func (u *User) ID() int64 {
	return u.id
}

// Name returns the customer's display name.
func (u *User) Name() string {
	return u.name
}

// Email returns the notification address; may be empty.
func (u *User) Email() string {
	return u.email
}

// Address returns the default delivery address; may be empty.
func (u *User) Address() string {
	return u.address
}

// Phone returns the SMS number; may be empty.
func (u *User) Phone() string {
	return u.phone
}

func (u *User) setID(id int64) error {
	if id < 0 {
		return errs.NewValueIsInvalidError("id")
	}
	u.id = id
	return nil
}

func (u *User) setName(name string) error {
	if name == "" {
		return ErrUserNameIsRequired
	}
	u.name = name
	return nil
}
