package ports

import (
	"context"

	"lastmile/internal/core/domain/model/audit"
)

// ToolCallRepository defines the append-only persistence contract for tool
// invocation audit rows. Audit writes happen outside business transactions;
// the envelope owns the failure policy.
type ToolCallRepository interface {
	// Add persists one audit row.
	Add(ctx context.Context, record *audit.ToolCall) error
}
