package tools

import (
	"context"
	"encoding/json"

	"lastmile/internal/core/application/envelope"
	"lastmile/internal/core/application/usecases/commands"
	"lastmile/internal/core/application/usecases/queries"
	"lastmile/internal/core/domain/model/driver"

	"github.com/google/uuid"
)

func (r Registry) driverTools() []envelope.Tool {
	return []envelope.Tool{
		{
			Name:       "get_driver_status",
			Title:      "Look up a driver's state and location",
			ReadOnly:   true,
			Idempotent: true,
			Handle: func(ctx context.Context, _ uuid.UUID, raw json.RawMessage) (any, error) {
				var input struct {
					DriverID int64 `json:"driverId"`
				}
				if err := decode(raw, &input); err != nil {
					return nil, err
				}

				query, err := queries.NewGetDriverStatusQuery(input.DriverID)
				if err != nil {
					return nil, err
				}
				return r.GetDriverStatus.Handle(ctx, query)
			},
		},
		{
			Name:       "update_driver_state",
			Title:      "Change a driver's availability state",
			Idempotent: true,
			Handle: func(ctx context.Context, _ uuid.UUID, raw json.RawMessage) (any, error) {
				var input struct {
					DriverID int64  `json:"driverId"`
					State    string `json:"state"`
				}
				if err := decode(raw, &input); err != nil {
					return nil, err
				}

				state, err := driver.ParseState(input.State)
				if err != nil {
					return nil, err
				}
				cmd, err := commands.NewUpdateDriverStateCommand(input.DriverID, state)
				if err != nil {
					return nil, err
				}
				return r.UpdateDriverState.Handle(ctx, cmd)
			},
		},
		{
			Name:       "update_driver_location",
			Title:      "Move a driver to a geocoded address",
			Idempotent: true,
			OpenWorld:  true,
			Handle: func(ctx context.Context, _ uuid.UUID, raw json.RawMessage) (any, error) {
				var input struct {
					DriverID int64  `json:"driverId"`
					Address  string `json:"address"`
				}
				if err := decode(raw, &input); err != nil {
					return nil, err
				}

				cmd, err := commands.NewUpdateDriverLocationCommand(input.DriverID, input.Address)
				if err != nil {
					return nil, err
				}
				return r.UpdateDriverLocation.Handle(ctx, cmd)
			},
		},
		{
			Name:       "check_driver_order",
			Title:      "Check a driver's current active order",
			ReadOnly:   true,
			Idempotent: true,
			Handle: func(ctx context.Context, _ uuid.UUID, raw json.RawMessage) (any, error) {
				var input struct {
					DriverID int64 `json:"driverId"`
				}
				if err := decode(raw, &input); err != nil {
					return nil, err
				}

				query, err := queries.NewCheckDriverOrderQuery(input.DriverID)
				if err != nil {
					return nil, err
				}
				return r.CheckDriverOrder.Handle(ctx, query)
			},
		},
	}
}
