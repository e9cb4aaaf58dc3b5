package testutil

import (
	"sync"

	"github.com/roach88/calc/internal/engine"
)

// RecordingNotifier collects every notification an engine emits.
//
// Thread-safety: safe for concurrent use via internal mutex.
type RecordingNotifier struct {
	mu   sync.Mutex
	sent []engine.Notification
}

// Notify implements engine.Notifier.
func (r *RecordingNotifier) Notify(n engine.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, n)
}

// All returns a copy of the notifications received so far.
func (r *RecordingNotifier) All() []engine.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]engine.Notification, len(r.sent))
	copy(out, r.sent)
	return out
}

// Last returns the most recent notification and whether there was one.
func (r *RecordingNotifier) Last() (engine.Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.sent) == 0 {
		return engine.Notification{}, false
	}
	return r.sent[len(r.sent)-1], true
}

// WithSeverity returns the notifications of one severity.
func (r *RecordingNotifier) WithSeverity(sev engine.Severity) []engine.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []engine.Notification
	for _, n := range r.sent {
		if n.Severity == sev {
			out = append(out, n)
		}
	}
	return out
}

// Reset discards the recorded notifications.
func (r *RecordingNotifier) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = nil
}
