package commands

import (
	"context"
	"errors"
	"fmt"

	"lastmile/internal/core/ports"
	"lastmile/internal/pkg/errs"
)

// NotifyMerchantResult reports a sent merchant notification.
type NotifyMerchantResult struct {
	MerchantID int64 `json:"merchantId"`
	Sent       bool  `json:"sent"`
}

// NotifyMerchantCommandHandler emails a merchant at their stored address.
type NotifyMerchantCommandHandler struct {
	uowFactory MerchantUoWFactory
	email      ports.EmailSender
}

// NewNotifyMerchantCommandHandler creates a handler for merchant notifications.
func NewNotifyMerchantCommandHandler(uowFactory MerchantUoWFactory, email ports.EmailSender) NotifyMerchantCommandHandler {
	return NotifyMerchantCommandHandler{
		uowFactory: uowFactory,
		email:      email,
	}
}

// Handle processes the notification command.
// Returns ErrMerchantNotFound / ErrContactMissing when the merchant cannot
// be reached, and ErrNotificationFailed when the send itself fails.
func (h NotifyMerchantCommandHandler) Handle(ctx context.Context, command NotifyMerchantCommand) (NotifyMerchantResult, error) {
	if err := command.Validate(); err != nil {
		return NotifyMerchantResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return NotifyMerchantResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	merchant, err := uow.MerchantRepository().Get(ctx, command.MerchantID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return NotifyMerchantResult{}, ErrMerchantNotFound
	}
	if err != nil {
		return NotifyMerchantResult{}, err
	}

	if merchant.Email() == "" {
		return NotifyMerchantResult{}, ErrContactMissing
	}

	if err = h.email.Send(ctx, merchant.Email(), command.Subject(), command.Message()); err != nil {
		return NotifyMerchantResult{}, fmt.Errorf("%w: %w", ErrNotificationFailed, err)
	}

	return NotifyMerchantResult{
		MerchantID: merchant.ID(),
		Sent:       true,
	}, nil
}
