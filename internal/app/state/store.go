package state

import (
	"sync"

	"eastask/internal/core/domain"
)

// Store holds the AppState behind a mutex. All mutation goes through
// Dispatch; readers get a snapshot copy and may not reach back into the
// stored tree.
type Store struct {
	mu          sync.RWMutex
	state       domain.AppState
	subscribers map[int]func(domain.AppState)
	nextSubID   int
}

func NewStore() *Store {
	return &Store{subscribers: make(map[int]func(domain.AppState))}
}

// GetState returns a snapshot of the current state.
func (s *Store) GetState() domain.AppState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneState(s.state)
}

// Dispatch applies the action through Reduce and notifies subscribers with
// the resulting snapshot. Subscribers run on the dispatching goroutine.
func (s *Store) Dispatch(action Action) {
	s.mu.Lock()
	s.state = Reduce(s.state, action)
	snapshot := cloneState(s.state)
	subs := make([]func(domain.AppState), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}
}

// Subscribe registers fn to run after every dispatch. The returned func
// removes the subscription.
func (s *Store) Subscribe(fn func(domain.AppState)) func() {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}
