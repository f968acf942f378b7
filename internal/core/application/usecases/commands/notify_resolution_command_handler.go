package commands

import (
	"context"
	"errors"
	"fmt"

	"lastmile/internal/core/ports"
	"lastmile/internal/pkg/errs"
)

// NotifyResolutionResult reports which parties were reached. Parties without
// a phone number are silently skipped; parties whose send failed are listed
// under Failed.
type NotifyResolutionResult struct {
	OrderID    int64    `json:"orderId"`
	Recipients []string `json:"recipients"`
	Failed     []string `json:"failed,omitempty"`
}

// NotifyResolutionCommandHandler sends a resolution SMS to the user, the
// merchant, and the assigned driver of an order, skipping parties without a
// phone. A partially failed broadcast reports the failed parties; a fully
// failed one (with at least one attempt) surfaces ErrNotificationFailed.
type NotifyResolutionCommandHandler struct {
	uowFactory ResolutionUoWFactory
	sms        ports.SMSSender
}

// NewNotifyResolutionCommandHandler creates a handler for resolution notifications.
func NewNotifyResolutionCommandHandler(uowFactory ResolutionUoWFactory, sms ports.SMSSender) NotifyResolutionCommandHandler {
	return NotifyResolutionCommandHandler{
		uowFactory: uowFactory,
		sms:        sms,
	}
}

// Handle processes the resolution notification command.
// Returns ErrOrderNotFound when the order does not exist.
func (h NotifyResolutionCommandHandler) Handle(ctx context.Context, command NotifyResolutionCommand) (NotifyResolutionResult, error) {
	if err := command.Validate(); err != nil {
		return NotifyResolutionResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return NotifyResolutionResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, command.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return NotifyResolutionResult{}, ErrOrderNotFound
	}
	if err != nil {
		return NotifyResolutionResult{}, err
	}

	type party struct {
		role  string
		phone string
	}
	parties := make([]party, 0, 3)

	user, err := uow.UserRepository().Get(ctx, aggregate.UserID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return NotifyResolutionResult{}, err
	}
	if err == nil && user.Phone() != "" {
		parties = append(parties, party{role: "user", phone: user.Phone()})
	}

	merchant, err := uow.MerchantRepository().Get(ctx, aggregate.MerchantID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return NotifyResolutionResult{}, err
	}
	if err == nil && merchant.Phone() != "" {
		parties = append(parties, party{role: "merchant", phone: merchant.Phone()})
	}

	if driverID := aggregate.DriverID(); driverID != nil {
		driver, err := uow.DriverRepository().Get(ctx, *driverID)
		if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
			return NotifyResolutionResult{}, err
		}
		if err == nil && driver.Phone() != "" {
			parties = append(parties, party{role: "driver", phone: driver.Phone()})
		}
	}

	result := NotifyResolutionResult{
		OrderID:    aggregate.ID(),
		Recipients: make([]string, 0, len(parties)),
	}
	for _, p := range parties {
		if err := h.sms.Send(ctx, p.phone, command.Message()); err != nil {
			result.Failed = append(result.Failed, p.role)
			continue
		}
		result.Recipients = append(result.Recipients, p.role)
	}

	if len(parties) > 0 && len(result.Recipients) == 0 {
		return result, fmt.Errorf("%w: all %d send(s) failed", ErrNotificationFailed, len(parties))
	}

	return result, nil
}
