package testutil

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/calc/internal/engine"
	"github.com/roach88/calc/internal/history"
)

func TestMemoryHistoryStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryHistoryStore(history.Record{ID: "a"})

	got, err := s.LoadHistory(ctx)
	require.NoError(t, err)
	assert.Equal(t, []history.Record{{ID: "a"}}, got)

	require.NoError(t, s.SaveHistory(ctx, []history.Record{{ID: "b"}, {ID: "c"}}))
	assert.Len(t, s.Records(), 2)
	assert.Equal(t, 1, s.Saves)
}

func TestMemoryHistoryStore_InjectedFailures(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("disk full")
	s := NewMemoryHistoryStore(history.Record{ID: "a"})
	s.LoadErr = boom
	s.SaveErr = boom

	_, err := s.LoadHistory(ctx)
	assert.ErrorIs(t, err, boom)

	err = s.SaveHistory(ctx, nil)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, s.Saves)
	assert.Len(t, s.Records(), 1, "failed save must not change stored records")
}

func TestRecordingNotifier(t *testing.T) {
	r := &RecordingNotifier{}
	_, ok := r.Last()
	assert.False(t, ok)

	r.Notify(engine.Notification{Message: "a", Severity: engine.SeverityInfo})
	r.Notify(engine.Notification{Message: "b", Severity: engine.SeverityWarning})

	last, ok := r.Last()
	require.True(t, ok)
	assert.Equal(t, "b", last.Message)
	assert.Len(t, r.All(), 2)
	assert.Len(t, r.WithSeverity(engine.SeverityWarning), 1)

	r.Reset()
	assert.Empty(t, r.All())
}

func TestNewFixture_Deterministic(t *testing.T) {
	f := NewFixture()
	require.NoError(t, f.Engine.PressAll("6 * 7 ="))

	recs := f.Engine.History()
	require.Len(t, recs, 1)
	assert.Equal(t, "rec-0001", recs[0].ID)
	assert.Equal(t, DefaultEpoch, recs[0].Timestamp)
	assert.Equal(t, recs, f.Store.Records())
}
