package history

import (
	"context"
	"time"
)

// MaxRecords is the maximum number of records a Log retains.
const MaxRecords = 100

// Record is a single completed calculation.
type Record struct {
	// ID uniquely identifies the record (UUIDv7 in production).
	ID string `json:"id"`

	// Expression is the evaluated expression, e.g. "5 + 3".
	Expression string `json:"expression"`

	// Result is the displayed result, rendered in Base.
	Result string `json:"result"`

	// Timestamp is the wall-clock time the calculation completed.
	Timestamp time.Time `json:"timestamp"`

	// Mode is the calculator mode name ("standard", "scientific", "programming").
	Mode string `json:"mode"`

	// Base is the numeric base Result is rendered in.
	Base int `json:"base"`
}

// Store persists the history log.
//
// LoadHistory returns records newest first. An empty slice (or nil) with a
// nil error means there is no saved history. SaveHistory receives the full
// log, newest first, and replaces whatever was stored before.
type Store interface {
	LoadHistory(ctx context.Context) ([]Record, error)
	SaveHistory(ctx context.Context, records []Record) error
}
