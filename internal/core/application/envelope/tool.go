package envelope

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
)

// Handler executes one tool invocation. The run identifier is assigned by the
// envelope; raw is the caller's JSON arguments, decoded and validated by the
// handler itself.
type Handler func(ctx context.Context, runID uuid.UUID, raw json.RawMessage) (any, error)

// Tool is a registered operation with its intent descriptors. Descriptors are
// advisory metadata for callers; the envelope treats all tools identically.
type Tool struct {
	// Name is the unique registration name, e.g. "assign_driver".
	Name string

	// Title is a human-readable label.
	Title string

	// ReadOnly marks tools that never modify state.
	ReadOnly bool

	// Destructive marks tools whose effects are hard to undo.
	Destructive bool

	// Idempotent marks tools safe to retry with the same arguments.
	Idempotent bool

	// OpenWorld marks tools that reach systems outside this one.
	OpenWorld bool

	// Handle executes the invocation.
	Handle Handler
}

// Descriptor is the caller-facing view of a registered tool, without the handler.
type Descriptor struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	ReadOnly    bool   `json:"readOnly"`
	Destructive bool   `json:"destructive"`
	Idempotent  bool   `json:"idempotent"`
	OpenWorld   bool   `json:"openWorld"`
}

// Descriptor returns the tool's caller-facing view.
func (t Tool) Descriptor() Descriptor {
	return Descriptor{
		Name:        t.Name,
		Title:       t.Title,
		ReadOnly:    t.ReadOnly,
		Destructive: t.Destructive,
		Idempotent:  t.Idempotent,
		OpenWorld:   t.OpenWorld,
	}
}
