package engine

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/roach88/calc/internal/history"
)

// storeTimeout bounds each history load or save.
const storeTimeout = 5 * time.Second

// Engine is the calculator state machine.
//
// INVARIANTS:
//   - previous is meaningful only while pending != OpNone
//   - digit entry never grows current beyond MaxDigits characters
//   - base only changes in Programming mode and preserves the decimal value
//   - errored forces the next digit entry to start a fresh calculation
//   - supplied marks a value produced by a function, memory recall or
//     history lookup while waiting; it counts as an entered operand
//
// Thread-safety: none. Operations must be called from one goroutine.
type Engine struct {
	mode     Mode
	angle    AngleMode
	base     Base
	current  string
	previous float64
	pending  Operator
	waiting  bool
	supplied bool
	memory   float64
	errored  bool
	errMsg   string

	history  *history.Log
	store    history.Store
	notifier Notifier
	logger   *slog.Logger
	now      NowFunc
	ids      IDGenerator
}

// Option configures an Engine.
type Option func(*Engine)

// WithStore sets the history store. History is loaded from it in New and
// saved after every evaluation. Without a store history is kept in memory.
func WithStore(s history.Store) Option {
	return func(e *Engine) {
		e.store = s
	}
}

// WithNotifier sets the receiver of operation outcomes.
func WithNotifier(n Notifier) Option {
	return func(e *Engine) {
		e.notifier = n
	}
}

// WithLogger sets the debug logger. Default: discard.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// WithClock sets the time source used for history timestamps.
func WithClock(now NowFunc) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// WithIDGenerator sets the history record ID generator. Default: UUIDv7.
func WithIDGenerator(g IDGenerator) Option {
	return func(e *Engine) {
		e.ids = g
	}
}

// WithMode sets the starting mode. Invalid modes are ignored.
func WithMode(m Mode) Option {
	return func(e *Engine) {
		if m.Valid() {
			e.mode = m
		}
	}
}

// WithAngleMode sets the starting angle mode. Invalid values are ignored.
func WithAngleMode(a AngleMode) Option {
	return func(e *Engine) {
		if a.Valid() {
			e.angle = a
		}
	}
}

// WithBase sets the starting Programming-mode base. Invalid bases are ignored.
func WithBase(b Base) Option {
	return func(e *Engine) {
		if b.Valid() {
			e.base = b
		}
	}
}

// New creates an Engine in the Ready phase with current value "0".
//
// If a store is configured its history is loaded once. A failed or empty
// load starts a fresh history; failures are reported as warnings.
func New(opts ...Option) *Engine {
	e := &Engine{
		mode:     ModeStandard,
		angle:    AngleDegrees,
		base:     Base10,
		current:  "0",
		history:  history.NewLog(nil),
		notifier: nopNotifier{},
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:      time.Now,
		ids:      UUIDv7Generator{},
	}

	for _, opt := range opts {
		opt(e)
	}

	e.loadHistory()
	return e
}

func (e *Engine) loadHistory() {
	if e.store == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	records, err := e.store.LoadHistory(ctx)
	if err != nil {
		e.logger.Warn("history load failed, starting fresh", "error", err)
		e.notifier.Notify(Notification{
			Message:  "Failed to load history",
			Severity: SeverityWarning,
			Err:      &CalcError{Code: ErrCodeStorage, Message: "Failed to load history", Err: err},
		})
		return
	}
	e.history = history.NewLog(records)
	e.logger.Debug("history loaded", "records", e.history.Len())
}

// State is a read-only snapshot of the calculator state.
type State struct {
	Mode              Mode
	AngleMode         AngleMode
	Base              Base
	Current           string
	Previous          float64
	Pending           Operator
	WaitingForOperand bool
	Memory            float64
	Error             bool
	HistoryLen        int
}

// State returns a snapshot of the current state.
func (e *Engine) State() State {
	return State{
		Mode:              e.mode,
		AngleMode:         e.angle,
		Base:              e.base,
		Current:           e.current,
		Previous:          e.previous,
		Pending:           e.pending,
		WaitingForOperand: e.waiting,
		Memory:            e.memory,
		Error:             e.errored,
		HistoryLen:        e.history.Len(),
	}
}

// Phase returns the state machine phase.
func (e *Engine) Phase() Phase {
	switch {
	case e.errored:
		return PhaseError
	case e.pending != OpNone:
		return PhaseOperatorPending
	}
	return PhaseReady
}

// Info summarises the calculator configuration.
type Info struct {
	Mode         string  `json:"mode"`
	AngleMode    string  `json:"angle_mode"`
	Base         int     `json:"base"`
	Memory       float64 `json:"memory"`
	HistoryCount int     `json:"history_count"`
}

// Info returns the calculator configuration and counters.
func (e *Engine) Info() Info {
	return Info{
		Mode:         e.mode.String(),
		AngleMode:    e.angle.String(),
		Base:         int(e.base),
		Memory:       e.memory,
		HistoryCount: e.history.Len(),
	}
}

// displayBase is the base the current value is written in.
func (e *Engine) displayBase() Base {
	if e.mode == ModeProgramming {
		return e.base
	}
	return Base10
}

// currentValue returns the decimal-normalised current value.
func (e *Engine) currentValue() (float64, error) {
	if e.mode == ModeProgramming {
		v, err := ParseInBase(e.current, e.base)
		if err != nil {
			return 0, newBaseConversionError(e.current, e.base, err)
		}
		return float64(v), nil
	}

	v, err := strconv.ParseFloat(e.current, 64)
	if err != nil {
		return 0, newBaseConversionError(e.current, Base10, err)
	}
	return v, nil
}

// render formats a decimal value for the current mode.
func (e *Engine) render(x float64) (string, error) {
	if e.mode == ModeProgramming {
		v, ok := toInteger(x)
		if !ok {
			return "", newDomainError(DomainInvalidResult)
		}
		return RenderInBase(v, e.base), nil
	}
	if !isFinite(x) {
		return "", newDomainError(DomainInvalidResult)
	}
	return FormatNumber(x), nil
}

// resetCalculation returns to the initial Ready state.
// Memory, history, mode, angle and base are kept.
func (e *Engine) resetCalculation() {
	e.current = "0"
	e.previous = 0
	e.pending = OpNone
	e.waiting = false
	e.supplied = false
	e.errored = false
	e.errMsg = ""
}

// operandEntered reports whether a right operand is available for the
// pending operator.
func (e *Engine) operandEntered() bool {
	return !e.waiting || e.supplied
}

// enterError moves to the Error phase if err is a calculation error and
// reports it. It returns err for the caller to propagate.
func (e *Engine) enterError(err error) error {
	ce, ok := err.(*CalcError)
	if !ok {
		ce = &CalcError{Code: ErrCodeBaseConversion, Message: "Invalid number", Err: err}
	}
	if ce.setsErrorFlag() {
		e.errored = true
		e.errMsg = ce.Message
		e.current = "Error"
	}
	return e.fail(ce)
}

// fail reports ce without touching the state.
func (e *Engine) fail(ce *CalcError) error {
	e.logger.Debug("operation failed", "code", ce.Code, "message", ce.Message)
	e.notifier.Notify(Notification{Message: ce.Message, Severity: ce.Severity(), Err: ce})
	return ce
}

func (e *Engine) notify(sev Severity, msg string) {
	e.notifier.Notify(Notification{Message: msg, Severity: sev})
}

// persist saves the history log. Failures are warnings only.
func (e *Engine) persist() {
	if e.store == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	if err := e.store.SaveHistory(ctx, e.history.Records()); err != nil {
		serr := newStorageError(err)
		e.logger.Warn("history save failed", "error", err)
		e.notifier.Notify(Notification{Message: serr.Message, Severity: SeverityWarning, Err: serr})
	}
}
