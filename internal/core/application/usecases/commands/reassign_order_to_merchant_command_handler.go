package commands

import (
	"context"
	"errors"

	"lastmile/internal/core/domain/model/order"
	"lastmile/internal/pkg/errs"
)

var ErrMerchantClosed = errors.New("merchant is not accepting orders")

// ReassignOrderToMerchantResult reports a completed merchant reassignment.
type ReassignOrderToMerchantResult struct {
	OldOrderID int64  `json:"oldOrderId"`
	NewOrderID int64  `json:"newOrderId"`
	MerchantID int64  `json:"merchantId"`
	Status     string `json:"status"`
}

// ReassignOrderToMerchantCommandHandler cancels an order and recreates it at
// a different merchant. Both writes happen in one transaction so the order
// never disappears without its replacement.
type ReassignOrderToMerchantCommandHandler struct {
	uowFactory ReassignUoWFactory
}

// NewReassignOrderToMerchantCommandHandler creates a handler for merchant reassignment.
func NewReassignOrderToMerchantCommandHandler(uowFactory ReassignUoWFactory) ReassignOrderToMerchantCommandHandler {
	return ReassignOrderToMerchantCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reassignment command.
// Returns ErrOrderNotFound / ErrMerchantNotFound for unresolvable references,
// ErrMerchantClosed when the new merchant is not accepting orders, and
// ErrItemsNotInInventory when the new merchant does not carry every item.
func (h ReassignOrderToMerchantCommandHandler) Handle(ctx context.Context, command ReassignOrderToMerchantCommand) (ReassignOrderToMerchantResult, error) {
	if err := command.Validate(); err != nil {
		return ReassignOrderToMerchantResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ReassignOrderToMerchantResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	previous, err := orderRepo.Get(ctx, command.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ReassignOrderToMerchantResult{}, ErrOrderNotFound
	}
	if err != nil {
		return ReassignOrderToMerchantResult{}, err
	}

	merchant, err := uow.MerchantRepository().Get(ctx, command.MerchantID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ReassignOrderToMerchantResult{}, ErrMerchantNotFound
	}
	if err != nil {
		return ReassignOrderToMerchantResult{}, err
	}

	if !merchant.IsOpen() {
		return ReassignOrderToMerchantResult{}, ErrMerchantClosed
	}
	if !merchant.CarriesAll(previous.Items()) {
		return ReassignOrderToMerchantResult{}, ErrItemsNotInInventory
	}

	if err = previous.ChangeStatus(order.Cancelled); err != nil {
		return ReassignOrderToMerchantResult{}, err
	}
	if err = orderRepo.Update(ctx, previous); err != nil {
		return ReassignOrderToMerchantResult{}, err
	}

	replacement, err := order.NewOrder(
		0,
		previous.UserID(),
		merchant.ID(),
		merchant.Address(),
		previous.Destination(),
		previous.Items(),
	)
	if err != nil {
		return ReassignOrderToMerchantResult{}, err
	}

	if location := merchant.Location(); location != nil {
		if err = replacement.SetSourceLocation(*location); err != nil {
			return ReassignOrderToMerchantResult{}, err
		}
	}

	newOrderID, err := orderRepo.Add(ctx, replacement)
	if err != nil {
		return ReassignOrderToMerchantResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ReassignOrderToMerchantResult{}, err
	}

	return ReassignOrderToMerchantResult{
		OldOrderID: previous.ID(),
		NewOrderID: newOrderID,
		MerchantID: merchant.ID(),
		Status:     replacement.Status().String(),
	}, nil
}
