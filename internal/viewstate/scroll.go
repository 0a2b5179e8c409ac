package viewstate

import "sync"

// ScrollThreshold is the vertical offset past which the navbar switches to its
// scrolled style.
const ScrollThreshold = 50

// ScrollTracker coalesces scroll samples: any number of Sample calls between
// two frames collapse into one update carrying the latest offset.
type ScrollTracker struct {
	mu      sync.Mutex
	offset  float64
	pending float64
	dirty   bool
}

func (s *ScrollTracker) Sample(offset float64) {
	s.mu.Lock()
	s.pending = offset
	s.dirty = true
	s.mu.Unlock()
}

// Frame applies the pending sample, if any, and reports whether the scrolled
// state flipped.
func (s *ScrollTracker) Frame() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.dirty {
		return false
	}
	before := s.offset > ScrollThreshold
	s.offset = s.pending
	s.dirty = false
	return before != (s.offset > ScrollThreshold)
}

func (s *ScrollTracker) Offset() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.offset
}

func (s *ScrollTracker) Scrolled() bool {
	return s.Offset() > ScrollThreshold
}
