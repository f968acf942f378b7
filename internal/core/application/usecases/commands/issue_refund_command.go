package commands

import (
	"errors"

	"lastmile/internal/pkg/errs"
	"lastmile/internal/pkg/guard"
)

var (
	ErrIssueRefundCommandIsNotConstructed = errors.New(
		"IssueRefundCommand must be created via NewIssueRefundCommand constructor",
	)
	ErrAmountIsInvalid = errors.New("amount must be greater than 0")
)

// IssueRefundCommand simulates a refund for an order. No refund record is
// kept beyond the invocation audit row; payment settlement happens outside
// this system.
type IssueRefundCommand struct { //nolint:recvcheck //using for validation
	orderID int64
	amount  float64
	reason  string

	guard guard.ConstructorGuard
}

// NewIssueRefundCommand creates a refund command.
func NewIssueRefundCommand(orderID int64, amount float64, reason string) (IssueRefundCommand, error) {
	command := IssueRefundCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setAmount(amount),
	); err != nil {
		return IssueRefundCommand{}, err
	}

	command.reason = reason
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c IssueRefundCommand) Validate() error {
	return c.guard.Validate(ErrIssueRefundCommandIsNotConstructed)
}

// OrderID returns the order being refunded.
func (c IssueRefundCommand) OrderID() int64 {
	return c.orderID
}

// Amount returns the refund amount.
func (c IssueRefundCommand) Amount() float64 {
	return c.amount
}

// Reason returns the optional refund reason.
func (c IssueRefundCommand) Reason() string {
	return c.reason
}

func (c *IssueRefundCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidError("orderId")
	}

	c.orderID = orderID
	return nil
}

func (c *IssueRefundCommand) setAmount(amount float64) error {
	if amount <= 0 {
		return ErrAmountIsInvalid
	}

	c.amount = amount
	return nil
}
