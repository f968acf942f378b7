package tools

import (
	"context"
	"encoding/json"

	"lastmile/internal/core/application/envelope"
	"lastmile/internal/core/application/usecases/commands"

	"github.com/google/uuid"
)

func (r Registry) dispatchTools() []envelope.Tool {
	return []envelope.Tool{
		{
			Name:      "assign_driver",
			Title:     "Assign the nearest idle driver to an order",
			OpenWorld: true,
			Handle: func(ctx context.Context, _ uuid.UUID, raw json.RawMessage) (any, error) {
				var input struct {
					OrderID int64 `json:"orderId"`
				}
				if err := decode(raw, &input); err != nil {
					return nil, err
				}

				cmd, err := commands.NewAssignDriverCommand(input.OrderID)
				if err != nil {
					return nil, err
				}
				return r.AssignDriver.Handle(ctx, cmd)
			},
		},
		{
			Name:      "assign_nearby_order",
			Title:     "Hand a waiting nearby order to an en-route driver",
			OpenWorld: true,
			Handle: func(ctx context.Context, _ uuid.UUID, raw json.RawMessage) (any, error) {
				var input struct {
					DriverID           int64   `json:"driverId"`
					CurrentPrepMinutes int     `json:"currentPrepMinutes"`
					MaxDistanceKm      float64 `json:"maxDistanceKm"`
				}
				if err := decode(raw, &input); err != nil {
					return nil, err
				}

				cmd, err := commands.NewAssignNearbyOrderCommand(input.DriverID, input.CurrentPrepMinutes, input.MaxDistanceKm)
				if err != nil {
					return nil, err
				}
				return r.AssignNearbyOrder.Handle(ctx, cmd)
			},
		},
	}
}
