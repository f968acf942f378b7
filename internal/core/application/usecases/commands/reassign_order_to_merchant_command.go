package commands

import (
	"errors"

	"lastmile/internal/pkg/errs"
	"lastmile/internal/pkg/guard"
)

var ErrReassignOrderToMerchantCommandIsNotConstructed = errors.New(
	"ReassignOrderToMerchantCommand must be created via NewReassignOrderToMerchantCommand constructor",
)

// ReassignOrderToMerchantCommand moves an order to a different merchant:
// the old order is cancelled and a replacement is created at the new
// merchant, preserving the items, user, and destination.
type ReassignOrderToMerchantCommand struct { //nolint:recvcheck //using for validation
	orderID    int64
	merchantID int64

	guard guard.ConstructorGuard
}

// NewReassignOrderToMerchantCommand creates a merchant reassignment command.
func NewReassignOrderToMerchantCommand(orderID, merchantID int64) (ReassignOrderToMerchantCommand, error) {
	command := ReassignOrderToMerchantCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setMerchantID(merchantID),
	); err != nil {
		return ReassignOrderToMerchantCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ReassignOrderToMerchantCommand) Validate() error {
	return c.guard.Validate(ErrReassignOrderToMerchantCommandIsNotConstructed)
}

// OrderID returns the order to reassign.
func (c ReassignOrderToMerchantCommand) OrderID() int64 {
	return c.orderID
}

// MerchantID returns the replacement merchant.
func (c ReassignOrderToMerchantCommand) MerchantID() int64 {
	return c.merchantID
}

func (c *ReassignOrderToMerchantCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidError("orderId")
	}

	c.orderID = orderID
	return nil
}

func (c *ReassignOrderToMerchantCommand) setMerchantID(merchantID int64) error {
	if merchantID <= 0 {
		return errs.NewValueIsInvalidError("merchantId")
	}

	c.merchantID = merchantID
	return nil
}
