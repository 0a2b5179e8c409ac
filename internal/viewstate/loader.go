package viewstate

import "time"

const TrainersLoadDelay = 500 * time.Millisecond

// Loader reports a simulated loading phase that ends delay after it started.
type Loader struct {
	started time.Time
	delay   time.Duration
	now     func() time.Time
}

func NewLoader(delay time.Duration, now func() time.Time) *Loader {
	if now == nil {
		now = time.Now
	}
	return &Loader{started: now(), delay: delay, now: now}
}

func (l *Loader) Loading() bool {
	return l.now().Sub(l.started) < l.delay
}

// Remaining is zero once loading has finished.
func (l *Loader) Remaining() time.Duration {
	left := l.delay - l.now().Sub(l.started)
	if left < 0 {
		return 0
	}
	return left
}

func (l *Loader) Delay() time.Duration { return l.delay }
