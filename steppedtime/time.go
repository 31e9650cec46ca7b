package steppedtime

import (
	"time"
)

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

// Time represents the number of nanoseconds since the start of the clock.
type Time int64

// Add returns the time t+d.
func (t Time) Add(d Duration) Time {
	return t + Time(d)
}

// Sub returns the duration t-u.
func (t Time) Sub(u Time) Duration {
	return Duration(t - u)
}

// IsZero reports whether t represents the zero time instant, the start of the clock.
func (t Time) IsZero() bool {
	return t == 0
}
