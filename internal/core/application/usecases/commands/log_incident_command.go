package commands

import (
	"encoding/json"
	"errors"

	"lastmile/internal/pkg/errs"
	"lastmile/internal/pkg/guard"

	"github.com/google/uuid"
)

var (
	ErrLogIncidentCommandIsNotConstructed = errors.New(
		"LogIncidentCommand must be created via NewLogIncidentCommand constructor",
	)
	ErrDescriptionIsRequired = errs.NewValueIsRequiredError("description")
)

// LogIncidentCommand records a free-form operational incident.
type LogIncidentCommand struct { //nolint:recvcheck //using for validation
	description string
	scenarioID  *uuid.UUID
	orderID     *int64
	metadata    json.RawMessage

	guard guard.ConstructorGuard
}

// NewLogIncidentCommand creates an incident logging command.
// scenarioID, orderID and metadata may be nil.
func NewLogIncidentCommand(description string, scenarioID *uuid.UUID, orderID *int64, metadata json.RawMessage) (LogIncidentCommand, error) {
	command := LogIncidentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setDescription(description); err != nil {
		return LogIncidentCommand{}, err
	}

	if scenarioID != nil {
		s := *scenarioID
		command.scenarioID = &s
	}
	if orderID != nil {
		o := *orderID
		command.orderID = &o
	}
	command.metadata = metadata

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c LogIncidentCommand) Validate() error {
	return c.guard.Validate(ErrLogIncidentCommandIsNotConstructed)
}

// Description returns the incident account.
func (c LogIncidentCommand) Description() string {
	return c.description
}

// ScenarioID returns the mediation scenario grouping, or nil.
func (c LogIncidentCommand) ScenarioID() *uuid.UUID {
	return c.scenarioID
}

// OrderID returns the affected order, or nil.
func (c LogIncidentCommand) OrderID() *int64 {
	return c.orderID
}

// Metadata returns the optional structured context blob.
func (c LogIncidentCommand) Metadata() json.RawMessage {
	return c.metadata
}

func (c *LogIncidentCommand) setDescription(description string) error {
	if description == "" {
		return ErrDescriptionIsRequired
	}

	c.description = description
	return nil
}
