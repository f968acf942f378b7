package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lastmile/internal/core/domain/model/incident"
	"lastmile/internal/core/ports"
	"lastmile/internal/pkg/errs"
)

var (
	ErrContactMissing     = errors.New("user has no contact address")
	ErrNotificationFailed = errors.New("notification failed")
)

// EscalateToHumanResult reports an opened escalation ticket.
type EscalateToHumanResult struct {
	TicketID int64 `json:"ticketId"`
	Notified bool  `json:"notified"`
}

// EscalateToHumanCommandHandler opens a human escalation ticket and emails
// the user the ticket id. The ticket is committed before the notification is
// sent, so a failed send never loses the escalation; the send failure is
// surfaced as ErrNotificationFailed alongside the persisted ticket.
type EscalateToHumanCommandHandler struct {
	uowFactory EscalationUoWFactory
	email      ports.EmailSender
}

// NewEscalateToHumanCommandHandler creates a handler for human escalation.
func NewEscalateToHumanCommandHandler(uowFactory EscalationUoWFactory, email ports.EmailSender) EscalateToHumanCommandHandler {
	return EscalateToHumanCommandHandler{
		uowFactory: uowFactory,
		email:      email,
	}
}

// Handle processes the escalation command.
// Returns ErrUserNotFound / ErrContactMissing when the user cannot be notified.
func (h EscalateToHumanCommandHandler) Handle(ctx context.Context, command EscalateToHumanCommand) (EscalateToHumanResult, error) {
	if err := command.Validate(); err != nil {
		return EscalateToHumanResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return EscalateToHumanResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	user, err := uow.UserRepository().Get(ctx, command.UserID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return EscalateToHumanResult{}, ErrUserNotFound
	}
	if err != nil {
		return EscalateToHumanResult{}, err
	}

	if user.Email() == "" {
		return EscalateToHumanResult{}, ErrContactMissing
	}

	ticket, err := incident.NewHumanEscalation(
		0,
		command.ScenarioID(),
		command.OrderID(),
		command.Reason(),
		command.UserID(),
		time.Now().UTC(),
	)
	if err != nil {
		return EscalateToHumanResult{}, err
	}

	ticketID, err := uow.EscalationRepository().Add(ctx, ticket)
	if err != nil {
		return EscalateToHumanResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return EscalateToHumanResult{}, err
	}

	subject := "Your case has been escalated"
	body := fmt.Sprintf(
		"Hello %s,\n\nYour case has been escalated to a human operator.\nTicket ID: %d\nReason: %s\n",
		user.Name(), ticketID, command.Reason(),
	)
	if err = h.email.Send(ctx, user.Email(), subject, body); err != nil {
		return EscalateToHumanResult{TicketID: ticketID, Notified: false},
			fmt.Errorf("%w: %w", ErrNotificationFailed, err)
	}

	return EscalateToHumanResult{TicketID: ticketID, Notified: true}, nil
}
