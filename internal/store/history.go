package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/roach88/calc/internal/history"
)

// LoadHistory returns the saved history, newest first.
// An empty database yields an empty slice.
//
// Implements history.Store.
func (s *Store) LoadHistory(ctx context.Context) ([]history.Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, expression, result, created_at, mode, base
		FROM history
		ORDER BY position ASC, id ASC COLLATE BINARY
		LIMIT ?
	`, history.MaxRecords)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	defer rows.Close()

	records := []history.Record{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("load history: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	return records, nil
}

func scanRecord(rows *sql.Rows) (history.Record, error) {
	var (
		rec       history.Record
		createdAt string
	)
	if err := rows.Scan(&rec.ID, &rec.Expression, &rec.Result, &createdAt, &rec.Mode, &rec.Base); err != nil {
		return history.Record{}, err
	}
	ts, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return history.Record{}, fmt.Errorf("record %s: parse timestamp: %w", rec.ID, err)
	}
	rec.Timestamp = ts
	return rec, nil
}

// SaveHistory replaces the saved history with records (newest first).
// The replacement is atomic: on failure the previous history is kept.
//
// Implements history.Store.
func (s *Store) SaveHistory(ctx context.Context, records []history.Record) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save history: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM history`); err != nil {
		return fmt.Errorf("save history: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO history (id, position, expression, result, created_at, mode, base)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("save history: %w", err)
	}
	defer stmt.Close()

	for i, r := range records {
		_, err := stmt.ExecContext(ctx,
			r.ID,
			i,
			r.Expression,
			r.Result,
			r.Timestamp.UTC().Format(time.RFC3339Nano),
			r.Mode,
			r.Base,
		)
		if err != nil {
			return fmt.Errorf("save history: record %s: %w", r.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save history: %w", err)
	}
	return nil
}

// CountHistory returns the number of saved records.
func (s *Store) CountHistory(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM history`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count history: %w", err)
	}
	return n, nil
}

// ClearHistory deletes every saved record.
func (s *Store) ClearHistory(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM history`); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}
