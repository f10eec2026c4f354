package crm

import (
	"log/slog"
	"sync"
	"time"

	"EstateDesk/internal/lib/sl"
)

// Store is the session-scoped CRM state container. State transitions go
// through the pure Reduce function under a single mutex; the store holds
// no persistence and resets to seed data on every construction cycle.
type Store struct {
	mu    sync.Mutex
	state State
	now   func() time.Time
	log   *slog.Logger
}

func NewStore(logger *slog.Logger) *Store {
	return &Store{
		state: State{
			Loaded: make(map[Collection]bool),
		},
		now: time.Now,
		log: logger.With(sl.Module("crm-store")),
	}
}

// SetClock injects the clock used for seed timestamps. Call before
// LoadSeed; tests use it for deterministic state.
func (s *Store) SetClock(now func() time.Time) {
	s.now = now
}

// Dispatch applies one action and returns the resulting state snapshot.
func (s *Store) Dispatch(a Action) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = Reduce(s.state, a)
	s.log.With(
		slog.String("action", string(a.Type)),
		slog.String("collection", string(a.Collection)),
	).Debug("crm action dispatched")
	return s.state
}

// Snapshot returns the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}
