package harness

import (
	"github.com/roach88/calc/internal/engine"
	"github.com/roach88/calc/internal/history"
)

// TraceEvent records one flow step: the keys pressed and what the
// calculator showed afterwards.
type TraceEvent struct {
	Seq       int64  `json:"seq"`
	Keys      string `json:"keys"`
	Primary   string `json:"primary"`
	Secondary string `json:"secondary,omitempty"`

	// Error is the code of the first key that failed, if any.
	Error string `json:"error,omitempty"`

	// Notifications are "severity: message" lines emitted during the step.
	Notifications []string `json:"notifications,omitempty"`
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass indicates overall test success.
	// True if all expect clauses and assertions match.
	Pass bool `json:"pass"`

	// Trace contains one event per flow step, in order.
	Trace []TraceEvent `json:"trace"`

	// Errors contains validation error messages.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`

	// History is the engine's history after the flow, newest first.
	History []history.Record `json:"history"`

	// Display is the final display.
	Display engine.Display `json:"display"`

	// Phase is the final state machine phase.
	Phase string `json:"phase"`
}

// NewResult creates a new passing result.
// Used as the starting point for test execution.
func NewResult() *Result {
	return &Result{
		Pass:    true,
		Trace:   []TraceEvent{},
		Errors:  []string{},
		History: []history.Record{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// AddStep appends a flow step to the trace with the next sequence number.
func (r *Result) AddStep(ev TraceEvent) {
	ev.Seq = int64(len(r.Trace) + 1)
	r.Trace = append(r.Trace, ev)
}
