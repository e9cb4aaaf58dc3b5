package history

import (
	"fmt"
	"time"

	"github.com/roach88/calc/internal/canonical"
)

// ExportVersion is written into every export document.
const ExportVersion = "1.0"

// Export encodes records as a canonical JSON export document:
//
//	{"calculator_version":"1.0","export_date":"…","history":[…]}
//
// Timestamps are RFC 3339 in UTC so the document is stable across zones.
func Export(records []Record, exportedAt time.Time) ([]byte, error) {
	items := make([]any, len(records))
	for i, r := range records {
		items[i] = r.toMap()
	}

	data, err := canonical.Marshal(map[string]any{
		"calculator_version": ExportVersion,
		"export_date":        exportedAt.UTC().Format(time.RFC3339),
		"history":            items,
	})
	if err != nil {
		return nil, fmt.Errorf("export history: %w", err)
	}
	return data, nil
}

func (r Record) toMap() map[string]any {
	return map[string]any{
		"id":         r.ID,
		"expression": r.Expression,
		"result":     r.Result,
		"timestamp":  r.Timestamp.UTC().Format(time.RFC3339Nano),
		"mode":       r.Mode,
		"base":       r.Base,
	}
}
