package commands

import (
	"context"
	"errors"
	"fmt"

	"lastmile/internal/core/ports"
	"lastmile/internal/pkg/errs"
)

// NotifyDriverResult reports a sent driver notification.
type NotifyDriverResult struct {
	DriverID int64 `json:"driverId"`
	Sent     bool  `json:"sent"`
}

// NotifyDriverCommandHandler texts a driver at their stored phone number.
// Drivers carry no email address, so the SMS channel is the only direct one.
type NotifyDriverCommandHandler struct {
	uowFactory DriverUoWFactory
	sms        ports.SMSSender
}

// NewNotifyDriverCommandHandler creates a handler for driver notifications.
func NewNotifyDriverCommandHandler(uowFactory DriverUoWFactory, sms ports.SMSSender) NotifyDriverCommandHandler {
	return NotifyDriverCommandHandler{
		uowFactory: uowFactory,
		sms:        sms,
	}
}

// Handle processes the notification command.
// Returns ErrDriverNotFound / ErrContactMissing when the driver cannot be
// reached, and ErrNotificationFailed when the send itself fails.
func (h NotifyDriverCommandHandler) Handle(ctx context.Context, command NotifyDriverCommand) (NotifyDriverResult, error) {
	if err := command.Validate(); err != nil {
		return NotifyDriverResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return NotifyDriverResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	driver, err := uow.DriverRepository().Get(ctx, command.DriverID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return NotifyDriverResult{}, ErrDriverNotFound
	}
	if err != nil {
		return NotifyDriverResult{}, err
	}

	if driver.Phone() == "" {
		return NotifyDriverResult{}, ErrContactMissing
	}

	if err = h.sms.Send(ctx, driver.Phone(), command.Message()); err != nil {
		return NotifyDriverResult{}, fmt.Errorf("%w: %w", ErrNotificationFailed, err)
	}

	return NotifyDriverResult{
		DriverID: driver.ID(),
		Sent:     true,
	}, nil
}
