package tools

import (
	"context"
	"encoding/json"

	"lastmile/internal/core/application/envelope"
	"lastmile/internal/core/application/usecases/commands"

	"github.com/google/uuid"
)

func (r Registry) notificationTools() []envelope.Tool {
	return []envelope.Tool{
		{
			Name:      "notify_customer",
			Title:     "Email a message to a user",
			OpenWorld: true,
			Handle: func(ctx context.Context, _ uuid.UUID, raw json.RawMessage) (any, error) {
				var input struct {
					UserID  int64  `json:"userId"`
					Subject string `json:"subject"`
					Message string `json:"message"`
				}
				if err := decode(raw, &input); err != nil {
					return nil, err
				}

				cmd, err := commands.NewNotifyCustomerCommand(input.UserID, input.Subject, input.Message)
				if err != nil {
					return nil, err
				}
				return r.NotifyCustomer.Handle(ctx, cmd)
			},
		},
		{
			Name:      "notify_merchant",
			Title:     "Email a message to a merchant",
			OpenWorld: true,
			Handle: func(ctx context.Context, _ uuid.UUID, raw json.RawMessage) (any, error) {
				var input struct {
					MerchantID int64  `json:"merchantId"`
					Subject    string `json:"subject"`
					Message    string `json:"message"`
				}
				if err := decode(raw, &input); err != nil {
					return nil, err
				}

				cmd, err := commands.NewNotifyMerchantCommand(input.MerchantID, input.Subject, input.Message)
				if err != nil {
					return nil, err
				}
				return r.NotifyMerchant.Handle(ctx, cmd)
			},
		},
		{
			Name:      "notify_driver",
			Title:     "Text a message to a driver",
			OpenWorld: true,
			Handle: func(ctx context.Context, _ uuid.UUID, raw json.RawMessage) (any, error) {
				var input struct {
					DriverID int64  `json:"driverId"`
					Message  string `json:"message"`
				}
				if err := decode(raw, &input); err != nil {
					return nil, err
				}

				cmd, err := commands.NewNotifyDriverCommand(input.DriverID, input.Message)
				if err != nil {
					return nil, err
				}
				return r.NotifyDriver.Handle(ctx, cmd)
			},
		},
		{
			Name:      "notify_resolution",
			Title:     "Text every party on an order about its resolution",
			OpenWorld: true,
			Handle: func(ctx context.Context, _ uuid.UUID, raw json.RawMessage) (any, error) {
				var input struct {
					OrderID int64  `json:"orderId"`
					Message string `json:"message"`
				}
				if err := decode(raw, &input); err != nil {
					return nil, err
				}

				cmd, err := commands.NewNotifyResolutionCommand(input.OrderID, input.Message)
				if err != nil {
					return nil, err
				}
				return r.NotifyResolution.Handle(ctx, cmd)
			},
		},
	}
}
