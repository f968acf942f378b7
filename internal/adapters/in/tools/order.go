package tools

import (
	"context"
	"encoding/json"

	"lastmile/internal/core/application/envelope"
	"lastmile/internal/core/application/usecases/commands"
	"lastmile/internal/core/application/usecases/queries"
	"lastmile/internal/core/domain/model/order"

	"github.com/google/uuid"
)

func (r Registry) orderTools() []envelope.Tool {
	return []envelope.Tool{
		{
			Name:  "create_order",
			Title: "Create a new order for a user at a merchant",
			Handle: func(ctx context.Context, _ uuid.UUID, raw json.RawMessage) (any, error) {
				var input struct {
					UserID      int64    `json:"userId"`
					MerchantID  int64    `json:"merchantId"`
					Destination string   `json:"destination"`
					Items       []string `json:"items"`
				}
				if err := decode(raw, &input); err != nil {
					return nil, err
				}

				cmd, err := commands.NewCreateOrderCommand(input.UserID, input.MerchantID, input.Destination, input.Items)
				if err != nil {
					return nil, err
				}
				return r.CreateOrder.Handle(ctx, cmd)
			},
		},
		{
			Name:       "change_order_status",
			Title:      "Move an order to a new status",
			Idempotent: true,
			Handle: func(ctx context.Context, _ uuid.UUID, raw json.RawMessage) (any, error) {
				var input struct {
					OrderID int64  `json:"orderId"`
					Status  string `json:"status"`
				}
				if err := decode(raw, &input); err != nil {
					return nil, err
				}

				status, err := order.ParseStatus(input.Status)
				if err != nil {
					return nil, err
				}
				cmd, err := commands.NewChangeOrderStatusCommand(input.OrderID, status)
				if err != nil {
					return nil, err
				}
				return r.ChangeOrderStatus.Handle(ctx, cmd)
			},
		},
		{
			Name:       "unassign_order",
			Title:      "Release an order's assigned driver",
			Idempotent: true,
			Handle: func(ctx context.Context, _ uuid.UUID, raw json.RawMessage) (any, error) {
				var input struct {
					OrderID int64 `json:"orderId"`
				}
				if err := decode(raw, &input); err != nil {
					return nil, err
				}

				cmd, err := commands.NewUnassignOrderCommand(input.OrderID)
				if err != nil {
					return nil, err
				}
				return r.UnassignOrder.Handle(ctx, cmd)
			},
		},
		{
			Name:       "get_order_details",
			Title:      "Look up an order's full details",
			ReadOnly:   true,
			Idempotent: true,
			Handle: func(ctx context.Context, _ uuid.UUID, raw json.RawMessage) (any, error) {
				var input struct {
					OrderID int64 `json:"orderId"`
				}
				if err := decode(raw, &input); err != nil {
					return nil, err
				}

				query, err := queries.NewGetOrderDetailsQuery(input.OrderID)
				if err != nil {
					return nil, err
				}
				return r.GetOrderDetails.Handle(ctx, query)
			},
		},
	}
}
