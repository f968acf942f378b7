package commands

import (
	"errors"

	"lastmile/internal/pkg/errs"
	"lastmile/internal/pkg/guard"
)

var ErrAlertAuthorityCommandIsNotConstructed = errors.New(
	"AlertAuthorityCommand must be created via NewAlertAuthorityCommand constructor",
)

// AlertAuthorityCommand raises an emergency alert for an incident to the
// fixed operational contact.
type AlertAuthorityCommand struct { //nolint:recvcheck //using for validation
	incidentID int64

	guard guard.ConstructorGuard
}

// NewAlertAuthorityCommand creates an authority alert command.
func NewAlertAuthorityCommand(incidentID int64) (AlertAuthorityCommand, error) {
	command := AlertAuthorityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setIncidentID(incidentID); err != nil {
		return AlertAuthorityCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AlertAuthorityCommand) Validate() error {
	return c.guard.Validate(ErrAlertAuthorityCommandIsNotConstructed)
}

// IncidentID returns the incident to alert about.
func (c AlertAuthorityCommand) IncidentID() int64 {
	return c.incidentID
}

func (c *AlertAuthorityCommand) setIncidentID(incidentID int64) error {
	if incidentID <= 0 {
		return errs.NewValueIsInvalidError("incidentId")
	}

	c.incidentID = incidentID
	return nil
}
