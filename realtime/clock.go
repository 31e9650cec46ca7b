package realtime

import (
	"time"
)

// See [time.Time].
type Time = time.Time

// See [time.Duration].
type Duration = time.Duration

// Duration constants.
const (
	Nanosecond  = time.Nanosecond
	Microsecond = time.Microsecond
	Millisecond = time.Millisecond
	Second      = time.Second
	Minute      = time.Minute
	Hour        = time.Hour
)

// Clock wraps package-level functions from [time]. Its methods are
// thread-safe and Clock objects may be copied freely. The zero-value of a
// Clock is perfectly valid.
type Clock struct{}

// NewClock returns a new Clock.
func NewClock() Clock {
	return Clock{}
}

// Now returns the current local time, including a monotonic clock reading.
func (Clock) Now() Time {
	return time.Now()
}

// Sleep pauses the current goroutine for at least the duration d. A negative
// or zero duration causes Sleep to return immediately.
func (Clock) Sleep(d Duration) {
	time.Sleep(d)
}
