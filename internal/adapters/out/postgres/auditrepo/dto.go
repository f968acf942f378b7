// Package auditrepo persists the tool invocation audit trail. Audit rows are
// written outside business transactions so a rolled-back operation still
// leaves its invocation on record.
package auditrepo

import (
	"time"

	"lastmile/internal/core/domain/model/audit"

	"github.com/google/uuid"
)

// ToolCallDTO represents the database structure for persisting tool call
// audit rows. The run id is the primary key; one row per invocation.
type ToolCallDTO struct {
	RunID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Tool      string    `gorm:"index;not null"`
	Args      []byte    `gorm:"type:jsonb"`
	Result    []byte    `gorm:"type:jsonb"`
	CreatedAt time.Time `gorm:"index;not null"`
}

// TableName specifies the database table name for tool call entities.
func (ToolCallDTO) TableName() string {
	return "tool_calls"
}

func fromDomain(record *audit.ToolCall) ToolCallDTO {
	return ToolCallDTO{
		RunID:     record.RunID(),
		Tool:      record.Tool(),
		Args:      record.Args(),
		Result:    record.Result(),
		CreatedAt: record.CreatedAt(),
	}
}
