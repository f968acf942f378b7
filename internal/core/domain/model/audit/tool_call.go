// Package audit holds the append-only record of tool invocations. Every run
// of a registered tool produces exactly one ToolCall row, whether the handler
// succeeded or failed.
package audit

import (
	"errors"
	"time"

	"lastmile/internal/pkg/errs"
	"lastmile/internal/pkg/guard"

	"github.com/google/uuid"
)

// Domain errors for audit operations.
var (
	// ErrToolCallIsNotConstructed is returned when a ToolCall was not created through a constructor.
	ErrToolCallIsNotConstructed = errors.New("ToolCall must be created via NewToolCall constructor")
	// ErrToolNameIsRequired is returned when recording a call without a tool name.
	ErrToolNameIsRequired = errs.NewValueIsRequiredError("tool name")
)

// ToolCall is one audited tool invocation: the run identifier, the tool name,
// and the serialized arguments and result. Rows are append-only and written
// once per run, after the handler returns.
type ToolCall struct {
	// runID uniquely identifies the invocation
	runID uuid.UUID

	// tool is the invoked tool's registered name
	tool string

	// args is the serialized raw input
	args []byte

	// result is the serialized outcome, success payload or error description
	result []byte

	// createdAt is when the call completed
	createdAt time.Time

	// guard ensures the record was created via a constructor
	guard guard.ConstructorGuard
}

// NewToolCall creates a new ToolCall audit record.
func NewToolCall(
	runID uuid.UUID,
	tool string,
	args []byte,
	result []byte,
	createdAt time.Time,
) (*ToolCall, error) {
	c := &ToolCall{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setRunID(runID),
		c.setTool(tool),
	); err != nil {
		return nil, err
	}

	c.args = args
	c.result = result
	c.createdAt = createdAt
	return c, nil
}

// RestoreToolCall reconstructs a ToolCall record from persistent storage.
func RestoreToolCall(
	runID uuid.UUID,
	tool string,
	args []byte,
	result []byte,
	createdAt time.Time,
) (*ToolCall, error) {
	return NewToolCall(runID, tool, args, result, createdAt)
}

// Validate checks that the record was created through a constructor.
func (c *ToolCall) Validate() error {
	if c == nil {
		return ErrToolCallIsNotConstructed
	}
	return c.guard.Validate(ErrToolCallIsNotConstructed)
}

// RunID returns the invocation's unique run identifier.
func (c *ToolCall) RunID() uuid.UUID {
	return c.runID
}

// Tool returns the invoked tool's registered name.
func (c *ToolCall) Tool() string {
	return c.tool
}

// Args returns the serialized raw input.
func (c *ToolCall) Args() []byte {
	return c.args
}

// Result returns the serialized outcome.
func (c *ToolCall) Result() []byte {
	return c.result
}

// CreatedAt returns when the call completed.
func (c *ToolCall) CreatedAt() time.Time {
	return c.createdAt
}

func (c *ToolCall) setRunID(runID uuid.UUID) error {
	if runID == uuid.Nil {
		return errs.NewValueIsRequiredError("runId")
	}
	c.runID = runID
	return nil
}

func (c *ToolCall) setTool(tool string) error {
	if tool == "" {
		return ErrToolNameIsRequired
	}
	c.tool = tool
	return nil
}
