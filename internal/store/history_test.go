package store

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/calc/internal/engine"
	"github.com/roach88/calc/internal/history"
	"github.com/roach88/calc/internal/testutil"
)

var _ history.Store = (*Store)(nil)

func testRecords() []history.Record {
	ts := time.Date(2026, 3, 4, 5, 6, 7, 890, time.UTC)
	return []history.Record{
		{ID: "b", Expression: "F + 1", Result: "10", Timestamp: ts.Add(time.Second), Mode: "programming", Base: 16},
		{ID: "a", Expression: "6 × 7", Result: "42", Timestamp: ts, Mode: "standard", Base: 10},
	}
}

func TestLoadHistory_Empty(t *testing.T) {
	s := createTestStore(t)

	got, err := s.LoadHistory(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSaveLoadHistory_RoundTrip(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveHistory(ctx, testRecords()))

	got, err := s.LoadHistory(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].ID, "newest first")
	for i, want := range testRecords() {
		assert.Equal(t, want.Expression, got[i].Expression)
		assert.Equal(t, want.Result, got[i].Result)
		assert.Equal(t, want.Mode, got[i].Mode)
		assert.Equal(t, want.Base, got[i].Base)
		assert.True(t, want.Timestamp.Equal(got[i].Timestamp), "timestamp %v != %v", want.Timestamp, got[i].Timestamp)
	}
}

func TestSaveHistory_Replaces(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveHistory(ctx, testRecords()))
	require.NoError(t, s.SaveHistory(ctx, testRecords()[1:]))

	n, err := s.CountHistory(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestSaveHistory_FailureKeepsPrevious(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.SaveHistory(ctx, testRecords()))

	dup := testRecords()
	dup[1].ID = dup[0].ID
	err := s.SaveHistory(ctx, dup)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "save history")

	n, err := s.CountHistory(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestLoadHistory_BadTimestamp(t *testing.T) {
	s := createTestStore(t)
	_, err := s.db.Exec(`
		INSERT INTO history (id, position, expression, result, created_at, mode, base)
		VALUES ('x', 0, '1 + 1', '2', 'yesterday', 'standard', 10)
	`)
	require.NoError(t, err)

	_, err = s.LoadHistory(context.Background())
	assert.ErrorContains(t, err, "parse timestamp")
}

func TestLoadHistory_CapsAtMaxRecords(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	records := make([]history.Record, history.MaxRecords+5)
	for i := range records {
		records[i] = history.Record{
			ID:         fmt.Sprintf("r%03d", i),
			Expression: fmt.Sprintf("%d + 0", i),
			Result:     fmt.Sprint(i),
			Timestamp:  testutil.DefaultEpoch,
			Mode:       "standard",
			Base:       10,
		}
	}
	require.NoError(t, s.SaveHistory(ctx, records))

	got, err := s.LoadHistory(ctx)
	require.NoError(t, err)
	assert.Len(t, got, history.MaxRecords)
	assert.Equal(t, "r000", got[0].ID)
}

func TestClearHistory(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.SaveHistory(ctx, testRecords()))

	require.NoError(t, s.ClearHistory(ctx))

	n, err := s.CountHistory(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestStore_PersistsAcrossEngines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calc.db")

	s1, err := Open(path)
	require.NoError(t, err)
	e1 := engine.New(engine.WithStore(s1), engine.WithClock(testutil.NewDeterministicClock().Now))
	require.NoError(t, e1.PressAll("5 + 3 = 2 * 4 ="))
	require.NoError(t, s1.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()
	e2 := engine.New(engine.WithStore(s2))

	recs := e2.History()
	require.Len(t, recs, 2)
	assert.Equal(t, "2 × 4", recs[0].Expression)
	assert.Equal(t, "5 + 3", recs[1].Expression)
	assert.Equal(t, testutil.DefaultEpoch, recs[1].Timestamp)
}

func TestSettings_RoundTrip(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	got, err := s.LoadSettings(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, s.SaveSettings(ctx, map[string]string{"mode": "scientific", "angle": "RAD"}))
	require.NoError(t, s.SaveSettings(ctx, map[string]string{"mode": "programming"}))

	got, err = s.LoadSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"mode": "programming", "angle": "RAD"}, got)
}
