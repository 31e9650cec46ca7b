package timekeep

import (
	"time"

	"github.com/noodlebox/timekeep/realtime"
)

// Countdown tracks a fixed duration from a start instant. Finishing is
// purely observational: nothing fires when the duration runs out, callers
// poll [Countdown.Finished] or [Countdown.Remaining].
type Countdown[T Time[T]] struct {
	clock    Clock[T]
	start    T
	duration Duration
}

// NewCountdown returns a Countdown for d started now on the real clock.
func NewCountdown(d Duration) *Countdown[time.Time] {
	return NewCountdownOn[time.Time](realtime.NewClock(), d)
}

// NewCountdownOn returns a Countdown for d started now on c.
func NewCountdownOn[T Time[T]](c Clock[T], d Duration) *Countdown[T] {
	return &Countdown[T]{
		clock:    c,
		start:    c.Now(),
		duration: d,
	}
}

// Duration returns the target duration the Countdown was created with.
func (t *Countdown[T]) Duration() Duration {
	return t.duration
}

// Elapsed returns the time since the Countdown was started or last reset.
func (t *Countdown[T]) Elapsed() Duration {
	return Since(t.clock, t.start)
}

// Remaining returns the time left before the Countdown finishes. It never
// goes below zero.
func (t *Countdown[T]) Remaining() Duration {
	return saturatingSub(t.duration, t.Elapsed())
}

// Finished reports whether no time remains.
func (t *Countdown[T]) Finished() bool {
	return t.Remaining() == 0
}

// Reset restarts the Countdown from now, keeping its duration.
func (t *Countdown[T]) Reset() {
	t.start = t.clock.Now()
}
