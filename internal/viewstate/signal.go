package viewstate

import "sync"

// Signal fans a value out to its current subscribers.
type Signal[T any] struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]func(T)
}

// Subscribe registers fn and returns the function that removes it. Calling the
// release more than once is a no-op.
func (s *Signal[T]) Subscribe(fn func(T)) func() {
	s.mu.Lock()
	if s.subs == nil {
		s.subs = make(map[int]func(T))
	}
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}

func (s *Signal[T]) Emit(value T) {
	s.mu.Lock()
	fns := make([]func(T), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(value)
	}
}

func (s *Signal[T]) Subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

// Scope owns the subscriptions of one page and drops them all on Close.
type Scope struct {
	mu       sync.Mutex
	releases []func()
	closed   bool
}

// Add adopts release. On a closed scope it is released immediately.
func (s *Scope) Add(release func()) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		release()
		return
	}
	s.releases = append(s.releases, release)
	s.mu.Unlock()
}

func (s *Scope) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	releases := s.releases
	s.releases = nil
	s.mu.Unlock()

	for _, release := range releases {
		release()
	}
}

// Listen subscribes fn to signal for the lifetime of scope.
func Listen[T any](scope *Scope, signal *Signal[T], fn func(T)) {
	scope.Add(signal.Subscribe(fn))
}
