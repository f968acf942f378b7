package commands

import (
	"context"
	"errors"

	"lastmile/internal/core/domain/model/order"
	"lastmile/internal/pkg/errs"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrMerchantNotFound    = errors.New("merchant not found")
	ErrItemsNotInInventory = errors.New("items not in merchant inventory")
)

// CreateOrderResult reports a created order.
type CreateOrderResult struct {
	OrderID int64  `json:"orderId"`
	Status  string `json:"status"`
}

// CreateOrderCommandHandler handles the business logic for order creation.
// The order's source is the merchant's address and every ordered item must be
// present in the merchant's inventory, compared case-insensitively.
type CreateOrderCommandHandler struct {
	uowFactory OrderCreationUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory OrderCreationUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// Returns ErrUserNotFound / ErrMerchantNotFound for unresolvable parties and
// ErrItemsNotInInventory when the merchant does not carry every item.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, command CreateOrderCommand) (CreateOrderResult, error) {
	if err := command.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.UserRepository().Get(ctx, command.UserID()); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return CreateOrderResult{}, ErrUserNotFound
		}
		return CreateOrderResult{}, err
	}

	merchant, err := uow.MerchantRepository().Get(ctx, command.MerchantID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return CreateOrderResult{}, ErrMerchantNotFound
	}
	if err != nil {
		return CreateOrderResult{}, err
	}

	if !merchant.CarriesAll(command.Items()) {
		return CreateOrderResult{}, ErrItemsNotInInventory
	}

	aggregate, err := order.NewOrder(
		0,
		command.UserID(),
		command.MerchantID(),
		merchant.Address(),
		command.Destination(),
		command.Items(),
	)
	if err != nil {
		return CreateOrderResult{}, err
	}

	if location := merchant.Location(); location != nil {
		if err = aggregate.SetSourceLocation(*location); err != nil {
			return CreateOrderResult{}, err
		}
	}

	orderID, err := uow.OrderRepository().Add(ctx, aggregate)
	if err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	return CreateOrderResult{
		OrderID: orderID,
		Status:  aggregate.Status().String(),
	}, nil
}
