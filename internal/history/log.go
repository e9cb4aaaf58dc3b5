package history

import (
	"strings"

	"golang.org/x/text/cases"
)

// Log is a bounded, newest-first list of records.
// The zero value is an empty log ready for use.
type Log struct {
	records []Record
}

// NewLog creates a log from records ordered newest first.
// Records beyond MaxRecords are dropped from the old end.
func NewLog(records []Record) *Log {
	n := min(len(records), MaxRecords)
	l := &Log{records: make([]Record, n)}
	copy(l.records, records[:n])
	return l
}

// Add prepends r and evicts the oldest record if the log is over capacity.
func (l *Log) Add(r Record) {
	l.records = append(l.records, Record{})
	copy(l.records[1:], l.records)
	l.records[0] = r
	if len(l.records) > MaxRecords {
		l.records = l.records[:MaxRecords]
	}
}

// Len returns the number of records.
func (l *Log) Len() int {
	return len(l.records)
}

// Records returns a copy of the records, newest first.
func (l *Log) Records() []Record {
	out := make([]Record, len(l.records))
	copy(out, l.records)
	return out
}

// Find returns the record with the given ID.
func (l *Log) Find(id string) (Record, bool) {
	for _, r := range l.records {
		if r.ID == id {
			return r, true
		}
	}
	return Record{}, false
}

// Clear removes all records.
func (l *Log) Clear() {
	l.records = nil
}

// Search returns records whose expression or result contains query,
// ignoring case. An empty query matches everything.
func (l *Log) Search(query string) []Record {
	return Filter(l.records, query)
}

// Filter returns the records whose expression or result contains query,
// ignoring case. Order is preserved.
func Filter(records []Record, query string) []Record {
	fold := cases.Fold()
	q := fold.String(query)

	out := make([]Record, 0, len(records))
	for _, r := range records {
		if strings.Contains(fold.String(r.Expression), q) || strings.Contains(fold.String(r.Result), q) {
			out = append(out, r)
		}
	}
	return out
}
