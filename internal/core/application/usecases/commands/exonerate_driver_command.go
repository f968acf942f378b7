package commands

import (
	"errors"

	"lastmile/internal/pkg/errs"
	"lastmile/internal/pkg/guard"
)

var ErrExonerateDriverCommandIsNotConstructed = errors.New(
	"ExonerateDriverCommand must be created via NewExonerateDriverCommand constructor",
)

// ExonerateDriverCommand clears a driver of fault. When an incident id is
// supplied the clearance is appended to that incident; without one the
// command is an acknowledgement-only no-op.
type ExonerateDriverCommand struct { //nolint:recvcheck //using for validation
	incidentID *int64

	guard guard.ConstructorGuard
}

// NewExonerateDriverCommand creates an exoneration command.
// incidentID may be nil.
func NewExonerateDriverCommand(incidentID *int64) (ExonerateDriverCommand, error) {
	command := ExonerateDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if incidentID != nil {
		if *incidentID <= 0 {
			return ExonerateDriverCommand{}, errs.NewValueIsInvalidError("incidentId")
		}
		id := *incidentID
		command.incidentID = &id
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ExonerateDriverCommand) Validate() error {
	return c.guard.Validate(ErrExonerateDriverCommandIsNotConstructed)
}

// IncidentID returns the incident to annotate, or nil for the no-op path.
func (c ExonerateDriverCommand) IncidentID() *int64 {
	return c.incidentID
}
