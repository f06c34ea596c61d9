package viewstate

import (
	"reflect"
	"sync"
)

// Store holds the current State of one screen and notifies subscribers of changes.
//
// Setting a state equal to the current one is a no-op, so re-entering Loading while
// already loading is not observed as a transition.
type Store[T any] struct {
	mu      sync.Mutex
	state   State[T]
	version uint64
	subs    map[uint64]chan State[T]
	nextSub uint64
}

// NewStore creates a store holding initial.
func NewStore[T any](initial State[T]) *Store[T] {
	return &Store[T]{
		state: initial,
		subs:  make(map[uint64]chan State[T]),
	}
}

// Get returns the current state.
func (s *Store[T]) Get() State[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Version returns the number of transitions observed so far.
func (s *Store[T]) Version() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

// Set replaces the current state. The last call wins.
func (s *Store[T]) Set(next State[T]) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if reflect.DeepEqual(s.state, next) {
		return
	}

	s.state = next
	s.version++

	for _, ch := range s.subs {
		// conflate: a slow subscriber only ever sees the newest state
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- next:
		default:
		}
	}
}

// Subscribe returns a channel that immediately receives the current state and then
// every later state. Intermediate states may be skipped if the reader is slow.
// The returned function unsubscribes and closes the channel.
func (s *Store[T]) Subscribe() (<-chan State[T], func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++

	ch := make(chan State[T], 1)
	ch <- s.state
	s.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subs, id)
			close(ch)
		})
	}
}
