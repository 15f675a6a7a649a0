package telemetry

import (
	"context"
	"sync"

	"github.com/nimbushq/nimbus/pkg/observability/logging"
)

// Store is the per-invocation buffer of recorded telemetry events.
// One store exists per CLI process: it is created at startup, appended
// to while the command runs, and flushed once at exit. Events are never
// mutated after being recorded.
type Store struct {
	mu       sync.Mutex
	events   []Event
	reporter Reporter
	saved    bool
}

// NewStore creates an empty store that flushes to the given reporter.
// A nil reporter discards events on Save.
func NewStore(reporter Reporter) *Store {
	return &Store{reporter: reporter}
}

// Record appends one event in insertion order. It never fails and
// never blocks on I/O.
func (s *Store) Record(ev Event) {
	s.mu.Lock()
	s.events = append(s.events, ev)
	s.mu.Unlock()
}

// Events returns a copy of the recorded events in insertion order.
func (s *Store) Events() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}

// Reset clears all recorded events and re-arms Save. Used between
// independent invocations in test harnesses so no events leak across.
func (s *Store) Reset() {
	s.mu.Lock()
	s.events = nil
	s.saved = false
	s.mu.Unlock()
}

// Save hands the accumulated events to the reporter. Delivery is
// best-effort: failures are logged at debug level and never reach the
// surrounding command or its exit code. Repeated calls after a
// completed save are no-ops.
func (s *Store) Save(ctx context.Context) {
	s.mu.Lock()
	if s.saved || len(s.events) == 0 || s.reporter == nil {
		s.mu.Unlock()
		return
	}
	s.saved = true
	batch := make([]Event, len(s.events))
	copy(batch, s.events)
	s.mu.Unlock()

	if err := s.reporter.Report(ctx, batch); err != nil {
		logging.WithField("error", err.Error()).Debug("telemetry delivery failed")
	}
}
