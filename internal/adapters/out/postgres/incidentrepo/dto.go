// Package incidentrepo provides data transfer objects and mapping functions
// for incident and escalation persistence.
package incidentrepo

import (
	"time"

	"lastmile/internal/core/domain/model/incident"

	"github.com/google/uuid"
)

// IncidentDTO represents the database structure for persisting incidents.
// Metadata holds the serialized JSON context blob, evidence items included.
type IncidentDTO struct {
	ID          int64      `gorm:"primaryKey;autoIncrement"`
	ScenarioID  *uuid.UUID `gorm:"type:uuid;index"`
	OrderID     *int64     `gorm:"index"`
	Description string     `gorm:"not null"`
	Metadata    []byte     `gorm:"type:jsonb"`
	CreatedAt   time.Time  `gorm:"not null"`
}

// TableName specifies the database table name for incident entities.
func (IncidentDTO) TableName() string {
	return "incidents"
}

// EscalationDTO represents the database structure for persisting human
// escalation tickets.
type EscalationDTO struct {
	ID         int64      `gorm:"primaryKey;autoIncrement"`
	ScenarioID *uuid.UUID `gorm:"type:uuid;index"`
	OrderID    *int64     `gorm:"index"`
	Reason     string     `gorm:"not null"`
	UserID     int64      `gorm:"index;not null"`
	CreatedAt  time.Time  `gorm:"not null"`
}

// TableName specifies the database table name for escalation entities.
func (EscalationDTO) TableName() string {
	return "escalations"
}

// ConversationDTO represents the database structure for persisting recorded
// conversation transcripts.
type ConversationDTO struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	OrderID    *int64    `gorm:"index"`
	Transcript string    `gorm:"not null"`
	Metadata   []byte    `gorm:"type:jsonb"`
	CreatedAt  time.Time `gorm:"not null"`
}

// TableName specifies the database table name for conversation entities.
func (ConversationDTO) TableName() string {
	return "conversations"
}

func incidentFromDomain(record *incident.Incident) IncidentDTO {
	return IncidentDTO{
		ID:          record.ID(),
		ScenarioID:  record.ScenarioID(),
		OrderID:     record.OrderID(),
		Description: record.Description(),
		Metadata:    record.Metadata(),
		CreatedAt:   record.CreatedAt(),
	}
}

func incidentToDomain(dto IncidentDTO) (*incident.Incident, error) {
	return incident.RestoreIncident(
		dto.ID,
		dto.ScenarioID,
		dto.OrderID,
		dto.Description,
		dto.Metadata,
		dto.CreatedAt,
	)
}

func escalationFromDomain(record *incident.HumanEscalation) EscalationDTO {
	return EscalationDTO{
		ID:         record.ID(),
		ScenarioID: record.ScenarioID(),
		OrderID:    record.OrderID(),
		Reason:     record.Reason(),
		UserID:     record.UserID(),
		CreatedAt:  record.CreatedAt(),
	}
}

func conversationFromDomain(record *incident.Conversation) ConversationDTO {
	return ConversationDTO{
		ID:         record.ID(),
		OrderID:    record.OrderID(),
		Transcript: record.Transcript(),
		Metadata:   record.Metadata(),
		CreatedAt:  record.CreatedAt(),
	}
}
