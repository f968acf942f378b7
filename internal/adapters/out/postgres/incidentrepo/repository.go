package incidentrepo

import (
	"context"
	"errors"

	"lastmile/internal/core/domain/model/incident"
	"lastmile/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormIncidentRepository implements ports.IncidentRepository using GORM.
type GormIncidentRepository struct {
	db *gorm.DB
}

// NewGormIncidentRepository creates a new GORM incident repository.
func NewGormIncidentRepository(db *gorm.DB) *GormIncidentRepository {
	return &GormIncidentRepository{db: db}
}

// Add saves a new incident and returns its store-assigned id.
func (r *GormIncidentRepository) Add(ctx context.Context, record *incident.Incident) (int64, error) {
	if err := record.Validate(); err != nil {
		return 0, err
	}

	dto := incidentFromDomain(record)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return 0, err
	}

	return dto.ID, nil
}

// Update saves an existing incident.
func (r *GormIncidentRepository) Update(ctx context.Context, record *incident.Incident) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := incidentFromDomain(record)
	result := r.db.WithContext(ctx).Model(&IncidentDTO{}).
		Where("id = ?", dto.ID).
		Select("scenario_id", "order_id", "description", "metadata").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("incident", dto.ID)
	}

	return nil
}

// Get retrieves an incident by id.
func (r *GormIncidentRepository) Get(ctx context.Context, id int64) (*incident.Incident, error) {
	var dto IncidentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("incident", id)
		}
		return nil, err
	}

	return incidentToDomain(dto)
}

// GormEscalationRepository implements ports.EscalationRepository using GORM.
type GormEscalationRepository struct {
	db *gorm.DB
}

// NewGormEscalationRepository creates a new GORM escalation repository.
func NewGormEscalationRepository(db *gorm.DB) *GormEscalationRepository {
	return &GormEscalationRepository{db: db}
}

// Add saves a new escalation ticket and returns its store-assigned id.
func (r *GormEscalationRepository) Add(ctx context.Context, record *incident.HumanEscalation) (int64, error) {
	if err := record.Validate(); err != nil {
		return 0, err
	}

	dto := escalationFromDomain(record)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return 0, err
	}

	return dto.ID, nil
}

// GormConversationRepository implements ports.ConversationRepository using GORM.
type GormConversationRepository struct {
	db *gorm.DB
}

// NewGormConversationRepository creates a new GORM conversation repository.
func NewGormConversationRepository(db *gorm.DB) *GormConversationRepository {
	return &GormConversationRepository{db: db}
}

// Add saves a new conversation record and returns its store-assigned id.
func (r *GormConversationRepository) Add(ctx context.Context, record *incident.Conversation) (int64, error) {
	if err := record.Validate(); err != nil {
		return 0, err
	}

	dto := conversationFromDomain(record)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return 0, err
	}

	return dto.ID, nil
}
