package tools

import (
	"context"
	"encoding/json"

	"lastmile/internal/core/application/envelope"
	"lastmile/internal/core/application/usecases/commands"
	"lastmile/internal/core/application/usecases/queries"

	"github.com/google/uuid"
)

func (r Registry) userTools() []envelope.Tool {
	return []envelope.Tool{
		{
			Name:  "create_user",
			Title: "Register a new user",
			Handle: func(ctx context.Context, _ uuid.UUID, raw json.RawMessage) (any, error) {
				var input struct {
					Name    string `json:"name"`
					Email   string `json:"email"`
					Address string `json:"address"`
					Phone   string `json:"phone"`
				}
				if err := decode(raw, &input); err != nil {
					return nil, err
				}

				cmd, err := commands.NewCreateUserCommand(input.Name, input.Email, input.Address, input.Phone)
				if err != nil {
					return nil, err
				}
				return r.CreateUser.Handle(ctx, cmd)
			},
		},
		{
			Name:       "get_user_details",
			Title:      "Look up a user's contact details",
			ReadOnly:   true,
			Idempotent: true,
			Handle: func(ctx context.Context, _ uuid.UUID, raw json.RawMessage) (any, error) {
				var input struct {
					UserID int64 `json:"userId"`
				}
				if err := decode(raw, &input); err != nil {
					return nil, err
				}

				query, err := queries.NewGetUserDetailsQuery(input.UserID)
				if err != nil {
					return nil, err
				}
				return r.GetUserDetails.Handle(ctx, query)
			},
		},
	}
}
