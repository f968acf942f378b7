package http_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	inhttp "lastmile/internal/adapters/in/http"
	"lastmile/internal/core/application/envelope"
	"lastmile/internal/core/domain/model/audit"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopToolCalls struct{}

func (noopToolCalls) Add(context.Context, *audit.ToolCall) error { return nil }

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	env := envelope.NewEnvelope(noopToolCalls{}, logger, nil, envelope.WriteSync)

	require.NoError(t, env.Register(envelope.Tool{
		Name:     "echo_args",
		Title:    "Echo back the arguments",
		ReadOnly: true,
		Handle: func(_ context.Context, _ uuid.UUID, raw json.RawMessage) (any, error) {
			var input map[string]any
			if err := json.Unmarshal(raw, &input); err != nil {
				return nil, err
			}
			return input, nil
		},
	}))

	e := echo.New()
	inhttp.NewServer(env, nil).RegisterRoutes(e)
	return e
}

func TestServer_Health(t *testing.T) {
	e := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "ok"}`, rec.Body.String())
}

func TestServer_ListTools(t *testing.T) {
	e := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/tools", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var descriptors []envelope.Descriptor
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &descriptors))
	require.Len(t, descriptors, 1)
	assert.Equal(t, "echo_args", descriptors[0].Name)
	assert.True(t, descriptors[0].ReadOnly)
}

func TestServer_InvokeTool(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		e := newTestServer(t)

		req := httptest.NewRequest(http.MethodPost, "/tools/echo_args", strings.NewReader(`{"orderId": 42}`))
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var response envelope.Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.True(t, response.OK)
		assert.Equal(t, "echo_args", response.Tool)
		assert.NotEmpty(t, response.RunID)
	})

	t.Run("handler_error_is_still_200", func(t *testing.T) {
		e := newTestServer(t)

		req := httptest.NewRequest(http.MethodPost, "/tools/echo_args", strings.NewReader(`not json`))
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var response envelope.Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.False(t, response.OK)
		assert.NotEmpty(t, response.Error)
	})

	t.Run("unknown_tool_is_404", func(t *testing.T) {
		e := newTestServer(t)

		req := httptest.NewRequest(http.MethodPost, "/tools/no_such_tool", strings.NewReader(`{}`))
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "no_such_tool")
	})
}
