package commands

import (
	"context"
	"errors"
	"fmt"

	"lastmile/internal/core/ports"
	"lastmile/internal/pkg/errs"
)

// NotifyCustomerResult reports a sent customer notification.
type NotifyCustomerResult struct {
	UserID int64 `json:"userId"`
	Sent   bool  `json:"sent"`
}

// NotifyCustomerCommandHandler emails a customer at their stored address.
type NotifyCustomerCommandHandler struct {
	uowFactory UserUoWFactory
	email      ports.EmailSender
}

// NewNotifyCustomerCommandHandler creates a handler for customer notifications.
func NewNotifyCustomerCommandHandler(uowFactory UserUoWFactory, email ports.EmailSender) NotifyCustomerCommandHandler {
	return NotifyCustomerCommandHandler{
		uowFactory: uowFactory,
		email:      email,
	}
}

// Handle processes the notification command.
// Returns ErrUserNotFound / ErrContactMissing when the user cannot be
// reached, and ErrNotificationFailed when the send itself fails.
func (h NotifyCustomerCommandHandler) Handle(ctx context.Context, command NotifyCustomerCommand) (NotifyCustomerResult, error) {
	if err := command.Validate(); err != nil {
		return NotifyCustomerResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return NotifyCustomerResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	user, err := uow.UserRepository().Get(ctx, command.UserID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return NotifyCustomerResult{}, ErrUserNotFound
	}
	if err != nil {
		return NotifyCustomerResult{}, err
	}

	if user.Email() == "" {
		return NotifyCustomerResult{}, ErrContactMissing
	}

	if err = h.email.Send(ctx, user.Email(), command.Subject(), command.Message()); err != nil {
		return NotifyCustomerResult{}, fmt.Errorf("%w: %w", ErrNotificationFailed, err)
	}

	return NotifyCustomerResult{
		UserID: user.ID(),
		Sent:   true,
	}, nil
}
