package auth

import (
	"sync"

	"EstateDesk/entity"
)

// State models the three auth-gate render states: the stream starts
// pending until the first resolution, then flips between absent and
// present as sign-ins and sign-outs happen.
type State int

const (
	StatePending State = iota
	StateAbsent
	StatePresent
)

func (s State) String() string {
	switch s {
	case StateAbsent:
		return "absent"
	case StatePresent:
		return "present"
	}
	return "pending"
}

// Change is one observed transition of the auth state.
type Change struct {
	State State
	User  *entity.UserAuth
}

// StateWatcher is a push-based auth-state observable decoupled from any
// auth provider. Subscribers receive the current state immediately on
// subscription, then every subsequent change; changes may fire at any
// time, including right after subscribing.
type StateWatcher struct {
	mu      sync.RWMutex
	current Change
	subs    map[chan Change]bool
}

func NewStateWatcher() *StateWatcher {
	return &StateWatcher{
		current: Change{State: StatePending},
		subs:    make(map[chan Change]bool),
	}
}

// Current returns the latest observed state.
func (w *StateWatcher) Current() Change {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.current
}

// Resolve records a sign-in (user non-nil) or sign-out (nil) and
// notifies subscribers. Slow subscribers miss intermediate states
// rather than blocking the resolution.
func (w *StateWatcher) Resolve(user *entity.UserAuth) {
	change := Change{State: StateAbsent}
	if user != nil {
		change = Change{State: StatePresent, User: user}
	}

	w.mu.Lock()
	w.current = change
	for sub := range w.subs {
		select {
		case sub <- change:
		default:
		}
	}
	w.mu.Unlock()
}

// Subscribe registers a listener. The returned cancel function tears the
// subscription down; callers must invoke it when done.
func (w *StateWatcher) Subscribe() (<-chan Change, func()) {
	ch := make(chan Change, 8)

	w.mu.Lock()
	w.subs[ch] = true
	ch <- w.current
	w.mu.Unlock()

	cancel := func() {
		w.mu.Lock()
		delete(w.subs, ch)
		w.mu.Unlock()
	}
	return ch, cancel
}
