package incident

import (
	"errors"
	"time"

	"lastmile/internal/pkg/errs"
	"lastmile/internal/pkg/guard"

	"github.com/google/uuid"
)

// Domain errors for escalation operations.
var (
	// ErrEscalationIsNotConstructed is returned when a HumanEscalation was not created through a constructor.
	ErrEscalationIsNotConstructed = errors.New("HumanEscalation must be created via NewHumanEscalation constructor")
	// ErrReasonIsRequired is returned when attempting to create an escalation without a reason.
	ErrReasonIsRequired = errs.NewValueIsRequiredError("reason")
)

// HumanEscalation is a ticket handing a case over to a human operator.
// The record is immutable once created.
type HumanEscalation struct {
	// id is the store-assigned ticket identifier
	id int64

	// scenarioID groups the ticket with a mediation scenario, nil when standalone
	scenarioID *uuid.UUID

	// orderID references the disputed order, nil when not order-specific
	orderID *int64

	// reason is why the case needs a human
	reason string

	// userID references the customer on whose behalf the case was escalated
	userID int64

	// createdAt is when the ticket was opened
	createdAt time.Time

	// guard ensures the escalation was created via a constructor
	guard guard.ConstructorGuard
}

// NewHumanEscalation creates a new HumanEscalation ticket.
// scenarioID and orderID may be nil.
func NewHumanEscalation(
	id int64,
	scenarioID *uuid.UUID,
	orderID *int64,
	reason string,
	userID int64,
	createdAt time.Time,
) (*HumanEscalation, error) {
	e := &HumanEscalation{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		e.setID(id),
		e.setReason(reason),
	); err != nil {
		return nil, err
	}

	if scenarioID != nil {
		s := *scenarioID
		e.scenarioID = &s
	}
	if orderID != nil {
		o := *orderID
		e.orderID = &o
	}

	e.userID = userID
	e.createdAt = createdAt
	return e, nil
}

// RestoreHumanEscalation reconstructs a HumanEscalation ticket from persistent storage.
func RestoreHumanEscalation(
	id int64,
	scenarioID *uuid.UUID,
	orderID *int64,
	reason string,
	userID int64,
	createdAt time.Time,
) (*HumanEscalation, error) {
	return NewHumanEscalation(id, scenarioID, orderID, reason, userID, createdAt)
}

// Validate checks that the HumanEscalation was created through a constructor.
func (e *HumanEscalation) Validate() error {
	if e == nil {
		return ErrEscalationIsNotConstructed
	}
	return e.guard.Validate(ErrEscalationIsNotConstructed)
}

// ID returns the ticket's store-assigned identifier.
func (e *HumanEscalation) ID() int64 {
	return e.id
}

// ScenarioID returns the mediation scenario grouping, or nil when standalone.
func (e *HumanEscalation) ScenarioID() *uuid.UUID {
	return e.scenarioID
}

// OrderID returns the disputed order's identifier, or nil.
func (e *HumanEscalation) OrderID() *int64 {
	return e.orderID
}

// Reason returns why the case needs a human.
func (e *HumanEscalation) Reason() string {
	return e.reason
}

// UserID returns the customer on whose behalf the case was escalated.
func (e *HumanEscalation) UserID() int64 {
	return e.userID
}

// CreatedAt returns when the ticket was opened.
func (e *HumanEscalation) CreatedAt() time.Time {
	return e.createdAt
}

func (e *HumanEscalation) setID(id int64) error {
	if id < 0 {
		return errs.NewValueIsInvalidError("id")
	}
	e.id = id
	return nil
}

func (e *HumanEscalation) setReason(reason string) error {
	if reason == "" {
		return ErrReasonIsRequired
	}
	e.reason = reason
	return nil
}
