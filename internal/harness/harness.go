package harness

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/roach88/calc/internal/engine"
	"github.com/roach88/calc/internal/history"
	"github.com/roach88/calc/internal/store"
	"github.com/roach88/calc/internal/testutil"
)

// errSaveRejected is the injected failure for fail_saves scenarios.
var errSaveRejected = errors.New("history save rejected by scenario")

// Harness is the scenario execution engine.
// It runs scenarios with a deterministic clock and record IDs.
type Harness struct {
	store    *store.Store
	engine   *engine.Engine
	clock    *testutil.DeterministicClock
	ids      *testutil.SequentialIDs
	notifier *testutil.RecordingNotifier
	logger   *slog.Logger
}

// Run executes a scenario and returns the result.
//
// Each scenario runs in a fresh in-memory database for isolation.
// Deterministic helpers ensure reproducible results.
//
// Execution flow:
// 1. Create fresh in-memory database
// 2. Build an engine in the scenario's mode, angle and base
// 3. Execute setup steps
// 4. Execute flow steps with expect validation
// 5. Evaluate assertions and return the result
func Run(scenario *Scenario) (*Result, error) {
	return RunWithLogger(scenario, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// RunWithLogger is Run with engine debug logging sent to logger.
func RunWithLogger(scenario *Scenario, logger *slog.Logger) (*Result, error) {
	st, err := store.Open(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to create in-memory store: %w", err)
	}
	defer st.Close()

	h := &Harness{
		store:    st,
		clock:    testutil.NewDeterministicClock(),
		ids:      testutil.NewSequentialIDs("rec"),
		notifier: &testutil.RecordingNotifier{},
		logger:   logger,
	}

	opts, err := h.engineOptions(scenario)
	if err != nil {
		return nil, err
	}
	h.engine = engine.New(opts...)

	ctx := context.Background()
	result := NewResult()

	if err := h.executeSetup(scenario.Setup); err != nil {
		return nil, fmt.Errorf("failed to execute setup: %w", err)
	}

	h.executeFlow(scenario.Flow, result)

	result.History = h.engine.History()
	result.Display = h.engine.Display()
	result.Phase = h.engine.Phase().String()

	for _, msg := range EvaluateAssertions(result, scenario.Assertions, &AssertionContext{Store: st, Ctx: ctx}) {
		result.AddError(msg)
	}

	return result, nil
}

func (h *Harness) engineOptions(s *Scenario) ([]engine.Option, error) {
	var hs history.Store = h.store
	if s.FailSaves {
		mem := testutil.NewMemoryHistoryStore()
		mem.SaveErr = errSaveRejected
		hs = mem
	}

	opts := []engine.Option{
		engine.WithStore(hs),
		engine.WithClock(h.clock.Now),
		engine.WithIDGenerator(h.ids),
		engine.WithNotifier(h.notifier),
		engine.WithLogger(h.logger),
	}

	if s.Mode != "" {
		m, err := engine.ParseMode(s.Mode)
		if err != nil {
			return nil, err
		}
		opts = append(opts, engine.WithMode(m))
	}
	if s.Angle != "" {
		a, err := engine.ParseAngleMode(s.Angle)
		if err != nil {
			return nil, err
		}
		opts = append(opts, engine.WithAngleMode(a))
	}
	if s.Base != 0 {
		opts = append(opts, engine.WithBase(engine.Base(s.Base)))
	}
	return opts, nil
}

// executeSetup presses the setup keys. Any failure aborts the scenario.
func (h *Harness) executeSetup(setup []Step) error {
	for i, step := range setup {
		if err := h.engine.PressAll(step.Keys); err != nil {
			return fmt.Errorf("setup[%d] %q: %w", i, step.Keys, err)
		}
	}
	h.notifier.Reset()
	return nil
}

// executeFlow presses each step's keys, records the trace and checks
// expectations. Failed keys do not stop the flow.
func (h *Harness) executeFlow(flow []Step, result *Result) {
	for i, step := range flow {
		h.notifier.Reset()
		err := h.engine.PressAll(step.Keys)
		display := h.engine.Display()

		ev := TraceEvent{
			Keys:      step.Keys,
			Primary:   display.Primary,
			Secondary: display.Secondary,
			Error:     string(engine.CodeOf(err)),
		}
		for _, n := range h.notifier.All() {
			ev.Notifications = append(ev.Notifications, n.Severity.String()+": "+n.Message)
		}
		result.AddStep(ev)

		h.logger.Debug("step", "index", i, "keys", step.Keys, "primary", display.Primary, "error", ev.Error)

		if step.Expect == nil {
			continue
		}
		for _, msg := range checkExpect(step.Expect, ev) {
			result.AddError(fmt.Sprintf("flow[%d] %q: %s", i, step.Keys, msg))
		}
	}
}

func checkExpect(exp *ExpectClause, ev TraceEvent) []string {
	var errs []string
	if exp.Primary != "" && exp.Primary != ev.Primary {
		errs = append(errs, fmt.Sprintf("primary = %q, expected %q", ev.Primary, exp.Primary))
	}
	if exp.Secondary != "" && exp.Secondary != ev.Secondary {
		errs = append(errs, fmt.Sprintf("secondary = %q, expected %q", ev.Secondary, exp.Secondary))
	}
	switch {
	case exp.Error == "":
	case exp.Error == ExpectNoError && ev.Error != "":
		errs = append(errs, fmt.Sprintf("unexpected error %s", ev.Error))
	case exp.Error != ExpectNoError && exp.Error != ev.Error:
		errs = append(errs, fmt.Sprintf("error = %q, expected %q", ev.Error, exp.Error))
	}
	return errs
}
