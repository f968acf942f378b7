package tools

import (
	"context"
	"encoding/json"

	"lastmile/internal/core/application/envelope"
	"lastmile/internal/core/application/usecases/commands"
	"lastmile/internal/core/application/usecases/queries"

	"github.com/google/uuid"
)

func (r Registry) merchantTools() []envelope.Tool {
	return []envelope.Tool{
		{
			Name:       "get_merchant_status",
			Title:      "Look up a merchant's status and preparation time",
			ReadOnly:   true,
			Idempotent: true,
			Handle: func(ctx context.Context, _ uuid.UUID, raw json.RawMessage) (any, error) {
				var input struct {
					MerchantID int64 `json:"merchantId"`
				}
				if err := decode(raw, &input); err != nil {
					return nil, err
				}

				query, err := queries.NewGetMerchantStatusQuery(input.MerchantID)
				if err != nil {
					return nil, err
				}
				return r.GetMerchantStatus.Handle(ctx, query)
			},
		},
		{
			Name:       "find_nearby_merchants",
			Title:      "Find open merchants carrying items near an address",
			ReadOnly:   true,
			Idempotent: true,
			OpenWorld:  true,
			Handle: func(ctx context.Context, _ uuid.UUID, raw json.RawMessage) (any, error) {
				var input struct {
					Address  string   `json:"address"`
					RadiusKm float64  `json:"radiusKm"`
					Items    []string `json:"items"`
				}
				if err := decode(raw, &input); err != nil {
					return nil, err
				}

				query, err := queries.NewFindNearbyMerchantsQuery(input.Address, input.RadiusKm, input.Items)
				if err != nil {
					return nil, err
				}
				return r.FindNearbyMerchants.Handle(ctx, query)
			},
		},
		{
			Name:        "reassign_order_to_merchant",
			Title:       "Cancel an order and recreate it at another merchant",
			Destructive: true,
			Handle: func(ctx context.Context, _ uuid.UUID, raw json.RawMessage) (any, error) {
				var input struct {
					OrderID    int64 `json:"orderId"`
					MerchantID int64 `json:"merchantId"`
				}
				if err := decode(raw, &input); err != nil {
					return nil, err
				}

				cmd, err := commands.NewReassignOrderToMerchantCommand(input.OrderID, input.MerchantID)
				if err != nil {
					return nil, err
				}
				return r.ReassignOrderToMerchant.Handle(ctx, cmd)
			},
		},
	}
}
