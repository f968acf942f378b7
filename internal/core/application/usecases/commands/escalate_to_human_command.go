package commands

import (
	"errors"

	"lastmile/internal/pkg/errs"
	"lastmile/internal/pkg/guard"

	"github.com/google/uuid"
)

var (
	ErrEscalateToHumanCommandIsNotConstructed = errors.New(
		"EscalateToHumanCommand must be created via NewEscalateToHumanCommand constructor",
	)
	ErrReasonIsRequired = errs.NewValueIsRequiredError("reason")
)

// EscalateToHumanCommand opens a human escalation ticket on behalf of a user.
type EscalateToHumanCommand struct { //nolint:recvcheck //using for validation
	userID     int64
	reason     string
	scenarioID *uuid.UUID
	orderID    *int64

	guard guard.ConstructorGuard
}

// NewEscalateToHumanCommand creates an escalation command.
// scenarioID and orderID may be nil.
func NewEscalateToHumanCommand(userID int64, reason string, scenarioID *uuid.UUID, orderID *int64) (EscalateToHumanCommand, error) {
	command := EscalateToHumanCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setUserID(userID),
		command.setReason(reason),
	); err != nil {
		return EscalateToHumanCommand{}, err
	}

	if scenarioID != nil {
		s := *scenarioID
		command.scenarioID = &s
	}
	if orderID != nil {
		o := *orderID
		command.orderID = &o
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c EscalateToHumanCommand) Validate() error {
	return c.guard.Validate(ErrEscalateToHumanCommandIsNotConstructed)
}

// UserID returns the user the case is escalated for.
func (c EscalateToHumanCommand) UserID() int64 {
	return c.userID
}

// Reason returns why the case needs a human.
func (c EscalateToHumanCommand) Reason() string {
	return c.reason
}

// ScenarioID returns the mediation scenario grouping, or nil.
func (c EscalateToHumanCommand) ScenarioID() *uuid.UUID {
	return c.scenarioID
}

// OrderID returns the disputed order, or nil.
func (c EscalateToHumanCommand) OrderID() *int64 {
	return c.orderID
}

func (c *EscalateToHumanCommand) setUserID(userID int64) error {
	if userID <= 0 {
		return errs.NewValueIsInvalidError("userId")
	}

	c.userID = userID
	return nil
}

func (c *EscalateToHumanCommand) setReason(reason string) error {
	if reason == "" {
		return ErrReasonIsRequired
	}

	c.reason = reason
	return nil
}
