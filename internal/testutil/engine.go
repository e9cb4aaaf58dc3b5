package testutil

import (
	"github.com/roach88/calc/internal/engine"
)

// Fixture bundles an engine with the deterministic collaborators it was
// built from.
type Fixture struct {
	Engine   *engine.Engine
	Clock    *DeterministicClock
	IDs      *SequentialIDs
	Store    *MemoryHistoryStore
	Notifier *RecordingNotifier
}

// NewFixture creates an engine wired to a deterministic clock, sequential
// IDs, an in-memory history store and a recording notifier. Extra options
// are applied after the defaults.
func NewFixture(opts ...engine.Option) *Fixture {
	f := &Fixture{
		Clock:    NewDeterministicClock(),
		IDs:      NewSequentialIDs("rec"),
		Store:    NewMemoryHistoryStore(),
		Notifier: &RecordingNotifier{},
	}
	all := []engine.Option{
		engine.WithClock(f.Clock.Now),
		engine.WithIDGenerator(f.IDs),
		engine.WithStore(f.Store),
		engine.WithNotifier(f.Notifier),
	}
	f.Engine = engine.New(append(all, opts...)...)
	return f
}
