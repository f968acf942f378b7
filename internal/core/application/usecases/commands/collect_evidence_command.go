package commands

import (
	"errors"

	"lastmile/internal/core/domain/model/incident"
	"lastmile/internal/pkg/errs"
	"lastmile/internal/pkg/guard"

	"github.com/google/uuid"
)

var (
	ErrCollectEvidenceCommandIsNotConstructed = errors.New(
		"CollectEvidenceCommand must be created via NewCollectEvidenceCommand constructor",
	)
	ErrEvidenceItemsAreRequired = errs.NewValueIsRequiredError("evidence items")
)

// CollectEvidenceCommand submits one or more evidence items for an incident.
// Items without explicit tags are enriched with AI-derived keyword tags
// before the incident is written.
type CollectEvidenceCommand struct { //nolint:recvcheck //using for validation
	scenarioID *uuid.UUID
	orderID    *int64
	items      []incident.Evidence

	guard guard.ConstructorGuard
}

// NewCollectEvidenceCommand creates an evidence collection command.
// scenarioID and orderID may be nil; at least one valid item is required.
func NewCollectEvidenceCommand(scenarioID *uuid.UUID, orderID *int64, items []incident.Evidence) (CollectEvidenceCommand, error) {
	command := CollectEvidenceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setItems(items); err != nil {
		return CollectEvidenceCommand{}, err
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
func (c CollectEvidenceCommand) Validate() error {
	return c.guard.Validate(ErrCollectEvidenceCommandIsNotConstructed)
}

// ScenarioID returns the mediation scenario grouping, or nil.
func (c CollectEvidenceCommand) ScenarioID() *uuid.UUID {
	return c.scenarioID
}

// OrderID returns the affected order, or nil.
func (c CollectEvidenceCommand) OrderID() *int64 {
	return c.orderID
}

// Items returns the submitted evidence items.
func (c CollectEvidenceCommand) Items() []incident.Evidence {
	return c.items
}

func (c *CollectEvidenceCommand) setItems(items []incident.Evidence) error {
	if len(items) == 0 {
		return ErrEvidenceItemsAreRequired
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = items
	return nil
}
