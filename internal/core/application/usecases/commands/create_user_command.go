package commands

import (
	"errors"

	"lastmile/internal/pkg/errs"
	"lastmile/internal/pkg/guard"
)

var (
	ErrCreateUserCommandIsNotConstructed = errors.New(
		"CreateUserCommand must be created via NewCreateUserCommand constructor",
	)
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// CreateUserCommand registers a new customer.
type CreateUserCommand struct { //nolint:recvcheck //using for validation
	name    string
	email   string
	address string
	phone   string

	guard guard.ConstructorGuard
}

// NewCreateUserCommand creates a user registration command.
// Contact fields may be empty; notification tools fail explicitly when they
// need a missing one.
func NewCreateUserCommand(name, email, address, phone string) (CreateUserCommand, error) {
	command := CreateUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setName(name); err != nil {
		return CreateUserCommand{}, err
	}

	command.email = email
	command.address = address
	command.phone = phone
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateUserCommand) Validate() error {
	return c.guard.Validate(ErrCreateUserCommandIsNotConstructed)
}

// Name returns the customer's display name.
func (c CreateUserCommand) Name() string {
	return c.name
}

// Email returns the notification address; may be empty.
func (c CreateUserCommand) Email() string {
	return c.email
}

// Address returns the default delivery address; may be empty.
func (c CreateUserCommand) Address() string {
	return c.address
}

// Phone returns the SMS number; may be empty.
func (c CreateUserCommand) Phone() string {
	return c.phone
}

func (c *CreateUserCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}
