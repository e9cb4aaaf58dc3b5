package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/calc/internal/canonical"
)

// TraceSnapshot captures what a scenario did: each step's display and the
// final history. It is serialized as canonical JSON for golden comparison.
type TraceSnapshot struct {
	ScenarioName string
	Trace        []TraceEvent
	History      []HistoryEntry
}

// HistoryEntry is the part of a history record that is stable across runs
// and meaningful to a reader.
type HistoryEntry struct {
	Expression string
	Result     string
}

// NewTraceSnapshot builds a snapshot from a scenario result.
func NewTraceSnapshot(name string, result *Result) TraceSnapshot {
	snap := TraceSnapshot{ScenarioName: name, Trace: result.Trace}
	for _, r := range result.History {
		snap.History = append(snap.History, HistoryEntry{Expression: r.Expression, Result: r.Result})
	}
	return snap
}

// toCanonicalMap converts a TraceSnapshot to a map[string]any for canonical JSON serialization.
func (s *TraceSnapshot) toCanonicalMap() map[string]any {
	traceList := make([]any, len(s.Trace))
	for i, event := range s.Trace {
		eventMap := map[string]any{
			"seq":     event.Seq,
			"keys":    event.Keys,
			"primary": event.Primary,
		}
		if event.Secondary != "" {
			eventMap["secondary"] = event.Secondary
		}
		if event.Error != "" {
			eventMap["error"] = event.Error
		}
		if len(event.Notifications) > 0 {
			eventMap["notifications"] = event.Notifications
		}
		traceList[i] = eventMap
	}

	historyList := make([]any, len(s.History))
	for i, h := range s.History {
		historyList[i] = map[string]any{
			"expression": h.Expression,
			"result":     h.Result,
		}
	}

	return map[string]any{
		"scenario_name": s.ScenarioName,
		"trace":         traceList,
		"history":       historyList,
	}
}

// MarshalCanonical returns the canonical JSON encoding of the snapshot.
func (s *TraceSnapshot) MarshalCanonical() ([]byte, error) {
	return canonical.Marshal(s.toCanonicalMap())
}

// RunWithGolden executes a scenario and compares the trace against a golden file.
// The golden file is stored in testdata/golden/{scenario.Name}.golden
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns error if scenario execution fails.
// Test failure (via goldie) occurs if trace doesn't match golden file.
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return nil, err
	}

	return result, AssertGolden(t, scenario.Name, result)
}

// AssertGolden compares the given result's trace against a golden file.
// This is useful when you've already run a scenario and want to compare
// the result against a golden file without re-running.
func AssertGolden(t *testing.T, scenarioName string, result *Result) error {
	t.Helper()

	snapshot := NewTraceSnapshot(scenarioName, result)
	traceJSON, err := snapshot.MarshalCanonical()
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenarioName, traceJSON)

	return nil
}
