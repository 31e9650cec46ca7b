package timekeep

import (
	"time"

	"github.com/noodlebox/timekeep/realtime"
)

// Stopwatch measures the time elapsed since it was created. It has no
// reset; create a new one instead.
type Stopwatch[T Time[T]] struct {
	clock Clock[T]
	start T
}

// NewStopwatch returns a Stopwatch started now on the real clock.
func NewStopwatch() *Stopwatch[time.Time] {
	return NewStopwatchOn[time.Time](realtime.NewClock())
}

// NewStopwatchOn returns a Stopwatch started now on c.
func NewStopwatchOn[T Time[T]](c Clock[T]) *Stopwatch[T] {
	return &Stopwatch[T]{
		clock: c,
		start: c.Now(),
	}
}

// Started returns the instant the Stopwatch was started at.
func (s *Stopwatch[T]) Started() T {
	return s.start
}

// Elapsed returns the time since the Stopwatch was started.
func (s *Stopwatch[T]) Elapsed() Duration {
	return Since(s.clock, s.start)
}
