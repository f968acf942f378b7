// Package envelope wraps every tool invocation in a uniform contract: a fresh
// run identifier, handler errors folded into the response instead of the
// transport, and exactly one append-only audit row per attempt. Audit
// persistence failures never fail the invocation; they are logged and counted.
package envelope

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"lastmile/internal/core/domain/model/audit"
	"lastmile/internal/core/ports"

	"github.com/google/uuid"
)

// WritePolicy controls when the audit row is persisted relative to the response.
type WritePolicy int

const (
	// WriteSync persists the audit row before Invoke returns.
	WriteSync WritePolicy = iota

	// WriteAsync persists the audit row on a background goroutine. Use Wait
	// during shutdown to drain in-flight writes.
	WriteAsync
)

// ErrToolNotFound is returned by Invoke when no tool is registered under the
// requested name.
type ErrToolNotFound struct {
	Name string
}

func (e ErrToolNotFound) Error() string {
	return fmt.Sprintf("tool not found: %s", e.Name)
}

// Response is the uniform result of one tool invocation.
type Response struct {
	RunID  string `json:"runId"`
	Tool   string `json:"tool"`
	OK     bool   `json:"ok"`
	Result any    `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Envelope is the tool registry and invocation wrapper.
type Envelope struct {
	toolCalls ports.ToolCallRepository
	logger    *slog.Logger
	metrics   *Metrics
	policy    WritePolicy

	mu    sync.RWMutex
	tools map[string]Tool

	pending sync.WaitGroup
}

// NewEnvelope creates an Envelope persisting audit rows to the given
// repository under the given write policy. metrics may be nil.
func NewEnvelope(
	toolCalls ports.ToolCallRepository,
	logger *slog.Logger,
	metrics *Metrics,
	policy WritePolicy,
) *Envelope {
	return &Envelope{
		toolCalls: toolCalls,
		logger:    logger.With("component", "envelope"),
		metrics:   metrics,
		policy:    policy,
		tools:     make(map[string]Tool),
	}
}

// Register adds a tool to the registry. Registering a second tool under the
// same name is a programming error.
func (e *Envelope) Register(tool Tool) error {
	if tool.Name == "" {
		return fmt.Errorf("tool name is required")
	}
	if tool.Handle == nil {
		return fmt.Errorf("tool %s has no handler", tool.Name)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.tools[tool.Name]; exists {
		return fmt.Errorf("tool already registered: %s", tool.Name)
	}
	e.tools[tool.Name] = tool
	return nil
}

// Tools returns the descriptors of all registered tools, sorted by name.
func (e *Envelope) Tools() []Descriptor {
	e.mu.RLock()
	defer e.mu.RUnlock()

	descriptors := make([]Descriptor, 0, len(e.tools))
	for _, tool := range e.tools {
		descriptors = append(descriptors, tool.Descriptor())
	}
	sort.Slice(descriptors, func(i, j int) bool {
		return descriptors[i].Name < descriptors[j].Name
	})
	return descriptors
}

// Invoke runs the named tool with the given raw JSON arguments.
//
// A fresh run identifier is assigned per attempt. A handler error (or panic)
// becomes Response{OK: false, Error: ...}, never an Invoke error; the only
// error Invoke itself returns is ErrToolNotFound. One audit row is written
// per attempt after the handler returns, under the configured write policy.
func (e *Envelope) Invoke(ctx context.Context, name string, raw json.RawMessage) (Response, error) {
	e.mu.RLock()
	tool, ok := e.tools[name]
	e.mu.RUnlock()
	if !ok {
		return Response{}, ErrToolNotFound{Name: name}
	}

	runID := uuid.New()
	result, err := e.run(ctx, tool, runID, raw)

	response := Response{
		RunID: runID.String(),
		Tool:  name,
		OK:    err == nil,
	}
	if err != nil {
		response.Error = err.Error()
	} else {
		response.Result = result
	}

	e.metrics.countInvocation(name, response.OK)
	e.audit(runID, name, raw, response)
	return response, nil
}

// Wait blocks until all asynchronous audit writes have finished.
func (e *Envelope) Wait() {
	e.pending.Wait()
}

func (e *Envelope) run(ctx context.Context, tool Tool, runID uuid.UUID, raw json.RawMessage) (result any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("tool %s panicked: %v", tool.Name, r)
		}
	}()
	return tool.Handle(ctx, runID, raw)
}

func (e *Envelope) audit(runID uuid.UUID, name string, raw json.RawMessage, response Response) {
	args := []byte(raw)

	var outcome []byte
	if response.OK {
		serialized, err := json.Marshal(response.Result)
		if err != nil {
			serialized = []byte(fmt.Sprintf("%q", fmt.Sprintf("unserializable result: %v", err)))
		}
		outcome = serialized
	} else {
		outcome, _ = json.Marshal(map[string]string{"error": response.Error})
	}

	record, err := audit.NewToolCall(runID, name, args, outcome, time.Now().UTC())
	if err != nil {
		e.metrics.countAuditFailure()
		e.logger.Error("audit record rejected", "tool", name, "runId", runID, "error", err)
		return
	}

	if e.policy == WriteAsync {
		e.pending.Add(1)
		go func() {
			defer e.pending.Done()
			e.persist(record)
		}()
		return
	}
	e.persist(record)
}

func (e *Envelope) persist(record *audit.ToolCall) {
	// audit writes get their own deadline so a slow store cannot hold the
	// response (async) or the caller (sync) indefinitely
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := e.toolCalls.Add(ctx, record); err != nil {
		e.metrics.countAuditFailure()
		e.logger.Error("audit write failed", "tool", record.Tool(), "runId", record.RunID(), "error", err)
	}
}
