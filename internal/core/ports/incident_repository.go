package ports

import (
	"context"

	"lastmile/internal/core/domain/model/incident"
)

// IncidentRepository defines the persistence contract for incident records.
type IncidentRepository interface {
	// Add persists a new incident and returns its store-assigned id.
	Add(ctx context.Context, record *incident.Incident) (int64, error)

	// Update persists changes to an existing incident.
	Update(ctx context.Context, record *incident.Incident) error

	// Get retrieves an incident by its identifier.
	Get(ctx context.Context, id int64) (*incident.Incident, error)
}

// EscalationRepository defines the persistence contract for human escalation tickets.
type EscalationRepository interface {
	// Add persists a new escalation ticket and returns its store-assigned id.
	Add(ctx context.Context, record *incident.HumanEscalation) (int64, error)
}

// ConversationRepository defines the persistence contract for recorded
// conversation transcripts.
type ConversationRepository interface {
	// Add persists a new conversation record and returns its store-assigned id.
	Add(ctx context.Context, record *incident.Conversation) (int64, error)
}
