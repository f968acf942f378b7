package commands

import (
	"context"
	"errors"

	"lastmile/internal/pkg/errs"
)

// ChangeOrderStatusResult reports a completed status change.
type ChangeOrderStatusResult struct {
	OrderID int64  `json:"orderId"`
	Status  string `json:"status"`
}

// ChangeOrderStatusCommandHandler handles caller-driven order status changes.
// Transitions are membership-validated only; no predecessor-state table is
// enforced.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangeOrderStatusCommandHandler creates a handler for order status changes.
func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command.
// Returns ErrOrderNotFound when the order does not exist.
func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, command ChangeOrderStatusCommand) (ChangeOrderStatusResult, error) {
	if err := command.Validate(); err != nil {
		return ChangeOrderStatusResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ChangeOrderStatusResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, command.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ChangeOrderStatusResult{}, ErrOrderNotFound
	}
	if err != nil {
		return ChangeOrderStatusResult{}, err
	}

	if err = aggregate.ChangeStatus(command.Status()); err != nil {
		return ChangeOrderStatusResult{}, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return ChangeOrderStatusResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ChangeOrderStatusResult{}, err
	}

	return ChangeOrderStatusResult{
		OrderID: aggregate.ID(),
		Status:  aggregate.Status().String(),
	}, nil
}
