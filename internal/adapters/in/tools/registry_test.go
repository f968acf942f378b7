package tools_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"lastmile/internal/adapters/in/tools"
	"lastmile/internal/core/application/envelope"
	"lastmile/internal/core/domain/model/audit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopToolCalls struct{}

func (noopToolCalls) Add(context.Context, *audit.ToolCall) error { return nil }

func newTestEnvelope() *envelope.Envelope {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return envelope.NewEnvelope(noopToolCalls{}, logger, nil, envelope.WriteSync)
}

func TestRegistry_RegisterAll(t *testing.T) {
	env := newTestEnvelope()
	require.NoError(t, tools.Registry{}.RegisterAll(env))

	descriptors := env.Tools()
	names := make([]string, len(descriptors))
	for i, descriptor := range descriptors {
		names[i] = descriptor.Name
	}

	assert.Equal(t, []string{
		"alert_authority",
		"assign_driver",
		"assign_nearby_order",
		"change_order_status",
		"check_driver_order",
		"collect_evidence",
		"contact_recipient_via_chat",
		"create_order",
		"create_user",
		"escalate_to_human",
		"exonerate_driver",
		"find_nearby_merchants",
		"get_driver_status",
		"get_merchant_status",
		"get_order_details",
		"get_user_details",
		"issue_refund",
		"log_incident",
		"log_packaging_feedback",
		"notify_customer",
		"notify_driver",
		"notify_merchant",
		"notify_resolution",
		"reassign_order_to_merchant",
		"record_conversation",
		"unassign_order",
		"update_driver_location",
		"update_driver_state",
	}, names)
}

func TestRegistry_RegisterAll_Twice_Fails(t *testing.T) {
	env := newTestEnvelope()
	require.NoError(t, tools.Registry{}.RegisterAll(env))

	assert.Error(t, tools.Registry{}.RegisterAll(env))
}

func TestRegistry_Descriptors_MarkReads(t *testing.T) {
	env := newTestEnvelope()
	require.NoError(t, tools.Registry{}.RegisterAll(env))

	readOnly := map[string]bool{}
	for _, descriptor := range env.Tools() {
		readOnly[descriptor.Name] = descriptor.ReadOnly
	}

	assert.True(t, readOnly["get_driver_status"])
	assert.True(t, readOnly["get_order_details"])
	assert.True(t, readOnly["find_nearby_merchants"])
	assert.False(t, readOnly["assign_driver"])
	assert.False(t, readOnly["issue_refund"])
}

func TestRegistry_MalformedArguments_FoldIntoResponse(t *testing.T) {
	env := newTestEnvelope()
	require.NoError(t, tools.Registry{}.RegisterAll(env))

	response, err := env.Invoke(t.Context(), "assign_driver", json.RawMessage(`{"orderId": "not-a-number"}`))

	require.NoError(t, err)
	assert.False(t, response.OK)
	assert.Contains(t, response.Error, "invalid arguments")
}

func TestRegistry_InvalidCommand_FoldsIntoResponse(t *testing.T) {
	env := newTestEnvelope()
	require.NoError(t, tools.Registry{}.RegisterAll(env))

	response, err := env.Invoke(t.Context(), "assign_driver", json.RawMessage(`{"orderId": 0}`))

	require.NoError(t, err)
	assert.False(t, response.OK)
	assert.NotEmpty(t, response.Error)
}
