package testutil

import (
	"context"
	"sync"

	"github.com/roach88/calc/internal/history"
)

// MemoryHistoryStore is an in-memory history.Store with injectable failures.
type MemoryHistoryStore struct {
	mu      sync.Mutex
	records []history.Record

	// LoadErr, when set, is returned by LoadHistory.
	LoadErr error

	// SaveErr, when set, is returned by SaveHistory and nothing is stored.
	SaveErr error

	// Saves counts SaveHistory calls, including failed ones.
	Saves int
}

// NewMemoryHistoryStore creates a store preloaded with records (newest first).
func NewMemoryHistoryStore(records ...history.Record) *MemoryHistoryStore {
	s := &MemoryHistoryStore{}
	s.records = append(s.records, records...)
	return s
}

// LoadHistory returns a copy of the stored records.
func (s *MemoryHistoryStore) LoadHistory(ctx context.Context) ([]history.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	out := make([]history.Record, len(s.records))
	copy(out, s.records)
	return out, nil
}

// SaveHistory replaces the stored records.
func (s *MemoryHistoryStore) SaveHistory(ctx context.Context, records []history.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Saves++
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.records = make([]history.Record, len(records))
	copy(s.records, records)
	return nil
}

// Records returns a copy of the stored records.
func (s *MemoryHistoryStore) Records() []history.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]history.Record, len(s.records))
	copy(out, s.records)
	return out
}
