package audit_test

import (
	"testing"
	"time"

	"lastmile/internal/core/domain/model/audit"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewToolCall(t *testing.T) {
	t.Run("creates_record", func(t *testing.T) {
		runID := uuid.New()
		now := time.Now()

		c, err := audit.NewToolCall(runID, "assign_driver", []byte(`{"orderId":1}`), []byte(`{"driverId":7}`), now)

		require.NoError(t, err)
		assert.Equal(t, runID, c.RunID())
		assert.Equal(t, "assign_driver", c.Tool())
		assert.JSONEq(t, `{"orderId":1}`, string(c.Args()))
		assert.JSONEq(t, `{"driverId":7}`, string(c.Result()))
		assert.Equal(t, now, c.CreatedAt())
	})

	t.Run("rejects_nil_run_id", func(t *testing.T) {
		_, err := audit.NewToolCall(uuid.Nil, "assign_driver", nil, nil, time.Now())

		require.Error(t, err)
	})

	t.Run("rejects_empty_tool_name", func(t *testing.T) {
		_, err := audit.NewToolCall(uuid.New(), "", nil, nil, time.Now())

		require.Error(t, err)
		require.ErrorIs(t, err, audit.ErrToolNameIsRequired)
	})
}
