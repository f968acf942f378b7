package auditrepo

import (
	"context"

	"lastmile/internal/core/domain/model/audit"

	"gorm.io/gorm"
)

// GormToolCallRepository implements ports.ToolCallRepository using GORM.
// It always writes through the base connection, never a business transaction.
type GormToolCallRepository struct {
	db *gorm.DB
}

// NewGormToolCallRepository creates a new GORM tool call repository.
func NewGormToolCallRepository(db *gorm.DB) *GormToolCallRepository {
	return &GormToolCallRepository{db: db}
}

// Add appends one audit row.
func (r *GormToolCallRepository) Add(ctx context.Context, record *audit.ToolCall) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	return r.db.WithContext(ctx).Create(&dto).Error
}
