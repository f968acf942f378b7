package commands

import (
	"context"
	"errors"

	"lastmile/internal/pkg/errs"
)

// UnassignOrderResult reports an unassignment attempt. Unassigning an order
// that has no driver is a normal outcome, reported with Unassigned false.
type UnassignOrderResult struct {
	OrderID    int64 `json:"orderId"`
	Unassigned bool  `json:"unassigned"`
}

// UnassignOrderCommandHandler clears the driver reference of an order.
type UnassignOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUnassignOrderCommandHandler creates a handler for order unassignment.
func NewUnassignOrderCommandHandler(uowFactory OrderUoWFactory) UnassignOrderCommandHandler {
	return UnassignOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the unassignment command.
// Returns ErrOrderNotFound when the order does not exist.
func (h UnassignOrderCommandHandler) Handle(ctx context.Context, command UnassignOrderCommand) (UnassignOrderResult, error) {
	if err := command.Validate(); err != nil {
		return UnassignOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return UnassignOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, command.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return UnassignOrderResult{}, ErrOrderNotFound
	}
	if err != nil {
		return UnassignOrderResult{}, err
	}

	removed, err := aggregate.Unassign()
	if err != nil {
		return UnassignOrderResult{}, err
	}

	if removed {
		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return UnassignOrderResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return UnassignOrderResult{}, err
	}

	return UnassignOrderResult{
		OrderID:    aggregate.ID(),
		Unassigned: removed,
	}, nil
}
