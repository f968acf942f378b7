// Package tools binds application command and query handlers to the
// invocation envelope. Each tool decodes its own typed input from the raw
// JSON arguments, builds a validated command or query, and returns the
// handler's result untouched; the envelope owns run ids, auditing, and
// error folding.
package tools

import (
	"encoding/json"
	"fmt"

	"lastmile/internal/core/application/envelope"
	"lastmile/internal/core/application/usecases/commands"
	"lastmile/internal/core/application/usecases/queries"
)

// Registry holds every handler the tool surface is built from.
type Registry struct {
	AssignDriver      commands.AssignDriverCommandHandler
	AssignNearbyOrder commands.AssignNearbyOrderCommandHandler

	UpdateDriverState    commands.UpdateDriverStateCommandHandler
	UpdateDriverLocation commands.UpdateDriverLocationCommandHandler
	GetDriverStatus      queries.GetDriverStatusQueryHandler
	CheckDriverOrder     queries.CheckDriverOrderQueryHandler

	CreateOrder       commands.CreateOrderCommandHandler
	ChangeOrderStatus commands.ChangeOrderStatusCommandHandler
	UnassignOrder     commands.UnassignOrderCommandHandler
	GetOrderDetails   queries.GetOrderDetailsQueryHandler

	CollectEvidence      commands.CollectEvidenceCommandHandler
	EscalateToHuman      commands.EscalateToHumanCommandHandler
	ExonerateDriver      commands.ExonerateDriverCommandHandler
	AlertAuthority       commands.AlertAuthorityCommandHandler
	LogIncident          commands.LogIncidentCommandHandler
	IssueRefund          commands.IssueRefundCommandHandler
	LogPackagingFeedback commands.LogPackagingFeedbackCommandHandler

	GetMerchantStatus       queries.GetMerchantStatusQueryHandler
	FindNearbyMerchants     queries.FindNearbyMerchantsQueryHandler
	ReassignOrderToMerchant commands.ReassignOrderToMerchantCommandHandler

	CreateUser     commands.CreateUserCommandHandler
	GetUserDetails queries.GetUserDetailsQueryHandler

	NotifyCustomer   commands.NotifyCustomerCommandHandler
	NotifyMerchant   commands.NotifyMerchantCommandHandler
	NotifyDriver     commands.NotifyDriverCommandHandler
	NotifyResolution commands.NotifyResolutionCommandHandler

	RecordConversation commands.RecordConversationCommandHandler
	ContactRecipient   commands.ContactRecipientCommandHandler
}

// RegisterAll registers the complete tool surface on the envelope.
func (r Registry) RegisterAll(env *envelope.Envelope) error {
	groups := [][]envelope.Tool{
		r.dispatchTools(),
		r.driverTools(),
		r.orderTools(),
		r.mediationTools(),
		r.merchantTools(),
		r.userTools(),
		r.notificationTools(),
	}

	for _, group := range groups {
		for _, tool := range group {
			if err := env.Register(tool); err != nil {
				return err
			}
		}
	}
	return nil
}

// decode unmarshals raw JSON arguments into a typed input struct. Absent
// arguments leave the input at its zero value; command validation decides
// whether that is acceptable.
func decode(raw json.RawMessage, into any) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, into); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}
