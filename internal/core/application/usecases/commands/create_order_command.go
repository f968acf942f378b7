package commands

import (
	"errors"

	"lastmile/internal/pkg/errs"
	"lastmile/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrDestinationIsRequired = errs.NewValueIsRequiredError("destination")
	ErrOrderItemsAreRequired = errs.NewValueIsRequiredError("items")
)

// CreateOrderCommand represents a request to create a new delivery order for
// a user at a merchant.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	userID      int64
	merchantID  int64
	destination string
	items       []string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new delivery order.
// Validates that both parties are referenced, the destination is set, and at
// least one item is ordered.
func NewCreateOrderCommand(userID, merchantID int64, destination string, items []string) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setUserID(userID),
		command.setMerchantID(merchantID),
		command.setDestination(destination),
		command.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// UserID returns the ordering customer.
func (c CreateOrderCommand) UserID() int64 {
	return c.userID
}

// MerchantID returns the preparing merchant.
func (c CreateOrderCommand) MerchantID() int64 {
	return c.merchantID
}

// Destination returns the delivery address.
func (c CreateOrderCommand) Destination() string {
	return c.destination
}

// Items returns the ordered item names.
func (c CreateOrderCommand) Items() []string {
	return c.items
}

func (c *CreateOrderCommand) setUserID(userID int64) error {
	if userID <= 0 {
		return errs.NewValueIsInvalidError("userId")
	}

	c.userID = userID
	return nil
}

func (c *CreateOrderCommand) setMerchantID(merchantID int64) error {
	if merchantID <= 0 {
		return errs.NewValueIsInvalidError("merchantId")
	}

	c.merchantID = merchantID
	return nil
}

func (c *CreateOrderCommand) setDestination(destination string) error {
	if destination == "" {
		return ErrDestinationIsRequired
	}

	c.destination = destination
	return nil
}

func (c *CreateOrderCommand) setItems(items []string) error {
	if len(items) == 0 {
		return ErrOrderItemsAreRequired
	}

	c.items = items
	return nil
}
