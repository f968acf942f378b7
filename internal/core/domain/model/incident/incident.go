package incident

import (
	"errors"
	"time"

	"lastmile/internal/pkg/errs"
	"lastmile/internal/pkg/guard"

	"github.com/google/uuid"
)

// exonerationSuffix is appended verbatim to the incident description when a
// driver is cleared of fault. Downstream reporting keys on this exact text.
const exonerationSuffix = " | Driver cleared of fault"

// Domain errors for incident operations.
var (
	// ErrIncidentIsNotConstructed is returned when an Incident was not created through a constructor.
	ErrIncidentIsNotConstructed = errors.New("Incident must be created via NewIncident constructor")
	// ErrDescriptionIsRequired is returned when attempting to create an incident without a description.
	ErrDescriptionIsRequired = errs.NewValueIsRequiredError("description")
)

// Incident is an operational incident record: a disputed delivery, collected
// evidence, or any other noteworthy event tied (optionally) to an order and a
// mediation scenario.
type Incident struct {
	// id is the store-assigned identifier
	id int64

	// scenarioID groups incidents belonging to one mediation scenario, nil when standalone
	scenarioID *uuid.UUID

	// orderID references the affected order, nil when not order-specific
	orderID *int64

	// description is the free-form account of what happened
	description string

	// metadata is an optional serialized JSON blob (evidence items, context)
	metadata []byte

	// createdAt is when the incident was recorded
	createdAt time.Time

	// guard ensures the incident was created via a constructor
	guard guard.ConstructorGuard
}

// NewIncident creates a new Incident record.
// scenarioID, orderID and metadata may be nil.
func NewIncident(
	id int64,
	scenarioID *uuid.UUID,
	orderID *int64,
	description string,
	metadata []byte,
	createdAt time.Time,
) (*Incident, error) {
	i := &Incident{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		i.setID(id),
		i.setDescription(description),
	); err != nil {
		return nil, err
	}

	if scenarioID != nil {
		s := *scenarioID
		i.scenarioID = &s
	}
	if orderID != nil {
		o := *orderID
		i.orderID = &o
	}

	i.metadata = metadata
	i.createdAt = createdAt
	return i, nil
}

// RestoreIncident reconstructs an Incident record from persistent storage.
func RestoreIncident(
	id int64,
	scenarioID *uuid.UUID,
	orderID *int64,
	description string,
	metadata []byte,
	createdAt time.Time,
) (*Incident, error) {
	return NewIncident(id, scenarioID, orderID, description, metadata, createdAt)
}

// Validate checks that the Incident was created through a constructor.
func (i *Incident) Validate() error {
	if i == nil {
		return ErrIncidentIsNotConstructed
	}
	return i.guard.Validate(ErrIncidentIsNotConstructed)
}

// ID returns the incident's store-assigned identifier.
func (i *Incident) ID() int64 {
	return i.id
}

// ScenarioID returns the mediation scenario grouping, or nil when standalone.
func (i *Incident) ScenarioID() *uuid.UUID {
	return i.scenarioID
}

// OrderID returns the affected order's identifier, or nil.
func (i *Incident) OrderID() *int64 {
	return i.orderID
}

// Description returns the incident's free-form account.
func (i *Incident) Description() string {
	return i.description
}

// Metadata returns the serialized JSON context blob, or nil.
func (i *Incident) Metadata() []byte {
	return i.metadata
}

// CreatedAt returns when the incident was recorded.
func (i *Incident) CreatedAt() time.Time {
	return i.createdAt
}

// AppendExoneration marks the incident's driver as cleared of fault by
// appending the fixed suffix to the description. Appending twice is allowed;
// each call records a distinct clearance event.
func (i *Incident) AppendExoneration() error {
	if err := i.Validate(); err != nil {
		return err
	}

	i.description += exonerationSuffix
	return nil
}

func (i *Incident) setID(id int64) error {
	if id < 0 {
		return errs.NewValueIsInvalidError("id")
	}
	i.id = id
	return nil
}

func (i *Incident) setDescription(description string) error {
	if description == "" {
		return ErrDescriptionIsRequired
	}
	i.description = description
	return nil
}
