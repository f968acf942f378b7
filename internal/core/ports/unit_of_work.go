package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// DriverRepository returns a DriverRepository bound to the current transaction.
	DriverRepository() DriverRepository

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// IncidentRepository returns an IncidentRepository bound to the current transaction.
	IncidentRepository() IncidentRepository

	// EscalationRepository returns an EscalationRepository bound to the current transaction.
	EscalationRepository() EscalationRepository

	// ConversationRepository returns a ConversationRepository bound to the current transaction.
	ConversationRepository() ConversationRepository

	// UserRepository returns a UserRepository bound to the current transaction.
	UserRepository() UserRepository

	// MerchantRepository returns a MerchantRepository bound to the current transaction.
	MerchantRepository() MerchantRepository

	// FeedbackRepository returns a FeedbackRepository bound to the current transaction.
	FeedbackRepository() FeedbackRepository
}
