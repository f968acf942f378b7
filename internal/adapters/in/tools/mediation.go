package tools

import (
	"context"
	"encoding/json"

	"lastmile/internal/core/application/envelope"
	"lastmile/internal/core/application/usecases/commands"
	"lastmile/internal/core/domain/model/incident"

	"github.com/google/uuid"
)

func (r Registry) mediationTools() []envelope.Tool {
	return []envelope.Tool{
		{
			Name:      "collect_evidence",
			Title:     "Record evidence items for an incident",
			OpenWorld: true,
			Handle: func(ctx context.Context, _ uuid.UUID, raw json.RawMessage) (any, error) {
				var input struct {
					ScenarioID *uuid.UUID          `json:"scenarioId"`
					OrderID    *int64              `json:"orderId"`
					Items      []incident.Evidence `json:"items"`
				}
				if err := decode(raw, &input); err != nil {
					return nil, err
				}

				cmd, err := commands.NewCollectEvidenceCommand(input.ScenarioID, input.OrderID, input.Items)
				if err != nil {
					return nil, err
				}
				return r.CollectEvidence.Handle(ctx, cmd)
			},
		},
		{
			Name:      "escalate_to_human",
			Title:     "Open a human escalation ticket for a user",
			OpenWorld: true,
			Handle: func(ctx context.Context, _ uuid.UUID, raw json.RawMessage) (any, error) {
				var input struct {
					UserID     int64      `json:"userId"`
					Reason     string     `json:"reason"`
					ScenarioID *uuid.UUID `json:"scenarioId"`
					OrderID    *int64     `json:"orderId"`
				}
				if err := decode(raw, &input); err != nil {
					return nil, err
				}

				cmd, err := commands.NewEscalateToHumanCommand(input.UserID, input.Reason, input.ScenarioID, input.OrderID)
				if err != nil {
					return nil, err
				}
				return r.EscalateToHuman.Handle(ctx, cmd)
			},
		},
		{
			Name:  "exonerate_driver",
			Title: "Clear a driver of fault on an incident",
			Handle: func(ctx context.Context, _ uuid.UUID, raw json.RawMessage) (any, error) {
				var input struct {
					IncidentID *int64 `json:"incidentId"`
				}
				if err := decode(raw, &input); err != nil {
					return nil, err
				}

				cmd, err := commands.NewExonerateDriverCommand(input.IncidentID)
				if err != nil {
					return nil, err
				}
				return r.ExonerateDriver.Handle(ctx, cmd)
			},
		},
		{
			Name:      "alert_authority",
			Title:     "Send an emergency alert to the operational authority",
			OpenWorld: true,
			Handle: func(ctx context.Context, _ uuid.UUID, raw json.RawMessage) (any, error) {
				var input struct {
					IncidentID int64 `json:"incidentId"`
				}
				if err := decode(raw, &input); err != nil {
					return nil, err
				}

				cmd, err := commands.NewAlertAuthorityCommand(input.IncidentID)
				if err != nil {
					return nil, err
				}
				return r.AlertAuthority.Handle(ctx, cmd)
			},
		},
		{
			Name:  "log_incident",
			Title: "Record a free-form incident",
			Handle: func(ctx context.Context, _ uuid.UUID, raw json.RawMessage) (any, error) {
				var input struct {
					Description string          `json:"description"`
					ScenarioID  *uuid.UUID      `json:"scenarioId"`
					OrderID     *int64          `json:"orderId"`
					Metadata    json.RawMessage `json:"metadata"`
				}
				if err := decode(raw, &input); err != nil {
					return nil, err
				}

				cmd, err := commands.NewLogIncidentCommand(input.Description, input.ScenarioID, input.OrderID, input.Metadata)
				if err != nil {
					return nil, err
				}
				return r.LogIncident.Handle(ctx, cmd)
			},
		},
		{
			Name:  "record_conversation",
			Title: "Save a communication transcript",
			Handle: func(ctx context.Context, _ uuid.UUID, raw json.RawMessage) (any, error) {
				var input struct {
					Transcript string          `json:"transcript"`
					OrderID    *int64          `json:"orderId"`
					Metadata   json.RawMessage `json:"metadata"`
				}
				if err := decode(raw, &input); err != nil {
					return nil, err
				}

				cmd, err := commands.NewRecordConversationCommand(input.Transcript, input.OrderID, input.Metadata)
				if err != nil {
					return nil, err
				}
				return r.RecordConversation.Handle(ctx, cmd)
			},
		},
		{
			Name:      "contact_recipient_via_chat",
			Title:     "Send a chat message to a delivery recipient",
			OpenWorld: true,
			Handle: func(ctx context.Context, _ uuid.UUID, raw json.RawMessage) (any, error) {
				var input struct {
					RecipientID string `json:"recipientId"`
					Message     string `json:"message"`
				}
				if err := decode(raw, &input); err != nil {
					return nil, err
				}

				cmd, err := commands.NewContactRecipientCommand(input.RecipientID, input.Message)
				if err != nil {
					return nil, err
				}
				return r.ContactRecipient.Handle(ctx, cmd)
			},
		},
		{
			Name:        "issue_refund",
			Title:       "Issue a refund for an order",
			Destructive: true,
			Handle: func(ctx context.Context, _ uuid.UUID, raw json.RawMessage) (any, error) {
				var input struct {
					OrderID int64   `json:"orderId"`
					Amount  float64 `json:"amount"`
					Reason  string  `json:"reason"`
				}
				if err := decode(raw, &input); err != nil {
					return nil, err
				}

				cmd, err := commands.NewIssueRefundCommand(input.OrderID, input.Amount, input.Reason)
				if err != nil {
					return nil, err
				}
				return r.IssueRefund.Handle(ctx, cmd)
			},
		},
		{
			Name:  "log_packaging_feedback",
			Title: "Record packaging feedback for a merchant",
			Handle: func(ctx context.Context, _ uuid.UUID, raw json.RawMessage) (any, error) {
				var input struct {
					MerchantID int64  `json:"merchantId"`
					OrderID    *int64 `json:"orderId"`
					Feedback   string `json:"feedback"`
				}
				if err := decode(raw, &input); err != nil {
					return nil, err
				}

				cmd, err := commands.NewLogPackagingFeedbackCommand(input.MerchantID, input.OrderID, input.Feedback)
				if err != nil {
					return nil, err
				}
				return r.LogPackagingFeedback.Handle(ctx, cmd)
			},
		},
	}
}
