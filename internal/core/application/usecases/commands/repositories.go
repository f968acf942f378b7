// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"lastmile/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends only on the narrowest unit of work it needs; the
// concrete unit of work satisfies all of them.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// DriverRepoFactory provides access to the driver repository within a transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// IncidentRepoFactory provides access to the incident repository within a transaction.
	IncidentRepoFactory interface {
		IncidentRepository() ports.IncidentRepository
	}

	// EscalationRepoFactory provides access to the escalation repository within a transaction.
	EscalationRepoFactory interface {
		EscalationRepository() ports.EscalationRepository
	}

	// ConversationRepoFactory provides access to the conversation repository within a transaction.
	ConversationRepoFactory interface {
		ConversationRepository() ports.ConversationRepository
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// MerchantRepoFactory provides access to the merchant repository within a transaction.
	MerchantRepoFactory interface {
		MerchantRepository() ports.MerchantRepository
	}

	// FeedbackRepoFactory provides access to the feedback repository within a transaction.
	FeedbackRepoFactory interface {
		FeedbackRepository() ports.FeedbackRepository
	}

	// DriverUoW manages transactions for driver-only operations.
	DriverUoW interface {
		TxManager
		DriverRepoFactory
	}

	// DriverUoWFactory creates new driver unit of work instances.
	DriverUoWFactory interface {
		Create() DriverUoW
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// DispatchUoW manages transactions spanning driver and order aggregates.
	// Used by nearest-driver assignment.
	DispatchUoW interface {
		TxManager
		DriverRepoFactory
		OrderRepoFactory
	}

	// DispatchUoWFactory creates new dispatch unit of work instances.
	DispatchUoWFactory interface {
		Create() DispatchUoW
	}

	// NearbyUoW manages transactions for nearby-order reassignment, which
	// reads merchants for preparation times.
	NearbyUoW interface {
		TxManager
		DriverRepoFactory
		OrderRepoFactory
		MerchantRepoFactory
	}

	// NearbyUoWFactory creates new nearby unit of work instances.
	NearbyUoWFactory interface {
		Create() NearbyUoW
	}

	// OrderCreationUoW manages transactions for order creation, which
	// validates the owning user and merchant.
	OrderCreationUoW interface {
		TxManager
		OrderRepoFactory
		UserRepoFactory
		MerchantRepoFactory
	}

	// OrderCreationUoWFactory creates new order creation unit of work instances.
	OrderCreationUoWFactory interface {
		Create() OrderCreationUoW
	}

	// IncidentUoW manages transactions for incident-only operations.
	IncidentUoW interface {
		TxManager
		IncidentRepoFactory
	}

	// IncidentUoWFactory creates new incident unit of work instances.
	IncidentUoWFactory interface {
		Create() IncidentUoW
	}

	// EscalationUoW manages transactions for human escalation, which
	// resolves the user being escalated for.
	EscalationUoW interface {
		TxManager
		EscalationRepoFactory
		UserRepoFactory
	}

	// EscalationUoWFactory creates new escalation unit of work instances.
	EscalationUoWFactory interface {
		Create() EscalationUoW
	}

	// ConversationUoW manages transactions for conversation recording.
	ConversationUoW interface {
		TxManager
		ConversationRepoFactory
	}

	// ConversationUoWFactory creates new conversation unit of work instances.
	ConversationUoWFactory interface {
		Create() ConversationUoW
	}

	// MerchantUoW manages transactions for merchant-only reads.
	MerchantUoW interface {
		TxManager
		MerchantRepoFactory
	}

	// MerchantUoWFactory creates new merchant unit of work instances.
	MerchantUoWFactory interface {
		Create() MerchantUoW
	}

	// UserUoW manages transactions for user-only operations.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	// UserUoWFactory creates new user unit of work instances.
	UserUoWFactory interface {
		Create() UserUoW
	}

	// FeedbackUoW manages transactions for packaging feedback, which
	// validates the merchant being reviewed.
	FeedbackUoW interface {
		TxManager
		FeedbackRepoFactory
		MerchantRepoFactory
	}

	// FeedbackUoWFactory creates new feedback unit of work instances.
	FeedbackUoWFactory interface {
		Create() FeedbackUoW
	}

	// ReassignUoW manages transactions for merchant reassignment, which
	// cancels one order and creates its replacement.
	ReassignUoW interface {
		TxManager
		OrderRepoFactory
		MerchantRepoFactory
	}

	// ReassignUoWFactory creates new reassignment unit of work instances.
	ReassignUoWFactory interface {
		Create() ReassignUoW
	}

	// ResolutionUoW provides read access to every party on an order for
	// resolution notifications.
	ResolutionUoW interface {
		TxManager
		OrderRepoFactory
		UserRepoFactory
		MerchantRepoFactory
		DriverRepoFactory
	}

	// ResolutionUoWFactory creates new resolution unit of work instances.
	ResolutionUoWFactory interface {
		Create() ResolutionUoW
	}
)
