package commands

import (
	"context"
	"errors"
	"fmt"

	"lastmile/internal/core/ports"
	"lastmile/internal/pkg/errs"
)

// AlertAuthorityResult reports a raised emergency alert.
type AlertAuthorityResult struct {
	IncidentID int64  `json:"incidentId"`
	Contact    string `json:"contact"`
	Alerted    bool   `json:"alerted"`
}

// AlertAuthorityCommandHandler sends a formatted emergency email about an
// incident to the fixed operational contact configured at startup. The alert
// goes to operations, not to the incident's own parties.
type AlertAuthorityCommandHandler struct {
	uowFactory       IncidentUoWFactory
	email            ports.EmailSender
	authorityContact string
}

// NewAlertAuthorityCommandHandler creates a handler for authority alerts.
func NewAlertAuthorityCommandHandler(
	uowFactory IncidentUoWFactory,
	email ports.EmailSender,
	authorityContact string,
) AlertAuthorityCommandHandler {
	return AlertAuthorityCommandHandler{
		uowFactory:       uowFactory,
		email:            email,
		authorityContact: authorityContact,
	}
}

// Handle processes the authority alert command.
// Returns ErrIncidentNotFound when the incident does not exist; no
// notification is sent in that case. A failed send is surfaced as
// ErrNotificationFailed.
func (h AlertAuthorityCommandHandler) Handle(ctx context.Context, command AlertAuthorityCommand) (AlertAuthorityResult, error) {
	if err := command.Validate(); err != nil {
		return AlertAuthorityResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AlertAuthorityResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	record, err := uow.IncidentRepository().Get(ctx, command.IncidentID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return AlertAuthorityResult{}, ErrIncidentNotFound
	}
	if err != nil {
		return AlertAuthorityResult{}, err
	}

	subject := fmt.Sprintf("EMERGENCY: incident #%d", record.ID())
	body := fmt.Sprintf(
		"Emergency alert for incident #%d\nReported at: %s\n\n%s\n",
		record.ID(), record.CreatedAt().Format("2006-01-02 15:04:05 MST"), record.Description(),
	)
	if err = h.email.Send(ctx, h.authorityContact, subject, body); err != nil {
		return AlertAuthorityResult{}, fmt.Errorf("%w: %w", ErrNotificationFailed, err)
	}

	return AlertAuthorityResult{
		IncidentID: record.ID(),
		Contact:    h.authorityContact,
		Alerted:    true,
	}, nil
}
