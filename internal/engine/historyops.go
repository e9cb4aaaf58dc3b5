package engine

import (
	"strconv"

	"github.com/roach88/calc/internal/history"
)

// History returns the history log, newest first.
func (e *Engine) History() []history.Record {
	return e.history.Records()
}

// SearchHistory returns records whose expression or result contains query.
func (e *Engine) SearchHistory(query string) []history.Record {
	return e.history.Search(query)
}

// UseHistoryResult loads the result of the record with the given ID as the
// current value, converting it from the record's base to the current one.
// A pending operator is kept, so the result can serve as its right operand.
func (e *Engine) UseHistoryResult(id string) error {
	rec, ok := e.history.Find(id)
	if !ok {
		return e.fail(newHistoryNotFoundError(id))
	}

	value, err := recordValue(rec)
	if err != nil {
		return e.fail(newBaseConversionError(rec.Result, Base(rec.Base), err))
	}

	if e.errored {
		e.resetCalculation()
	}
	text, err := e.render(value)
	if err != nil {
		return e.enterError(err)
	}

	e.current = text
	e.waiting = true
	e.supplied = true
	e.notify(SeveritySuccess, "Result loaded from history")
	return nil
}

func recordValue(rec history.Record) (float64, error) {
	base := Base(rec.Base)
	if rec.Mode == ModeProgramming.String() && base.Valid() {
		v, err := ParseInBase(rec.Result, base)
		return float64(v), err
	}
	return strconv.ParseFloat(rec.Result, 64)
}

// ClearHistory empties the history log and persists the empty log.
func (e *Engine) ClearHistory() error {
	e.history.Clear()
	e.persist()
	e.notify(SeverityInfo, "History cleared")
	return nil
}

// ExportHistory returns the history as a canonical JSON export document.
func (e *Engine) ExportHistory() ([]byte, error) {
	data, err := history.Export(e.history.Records(), e.now())
	if err != nil {
		return nil, err
	}
	e.notify(SeveritySuccess, "History exported successfully")
	return data, nil
}
