package appstate

import (
	"sync"
	"time"
)

// Store owns the current State and serialises dispatches through a Reducer.
type Store struct {
	mu      sync.Mutex
	state   State
	reducer Reducer
	now     func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source passed to the reducer.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithReducer replaces DefaultReducer.
func WithReducer(r Reducer) Option {
	return func(s *Store) { s.reducer = r }
}

// NewStore returns a store seeded with initial.
func NewStore(initial State, opts ...Option) *Store {
	s := &Store{state: initial, reducer: DefaultReducer, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch reduces a into the current state and returns the states before
// and after.
func (s *Store) Dispatch(a Action) (prev, next State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev = s.state
	s.state = s.reducer.Reduce(prev, a, s.now())
	return prev, s.state
}
