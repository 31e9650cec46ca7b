package timekeep

import (
	"math"
	"time"
)

type Duration = time.Duration

const (
	Nanosecond  = time.Nanosecond
	Microsecond = time.Microsecond
	Millisecond = time.Millisecond
	Second      = time.Second
	Minute      = time.Minute
	Hour        = time.Hour
)

// MaxDuration is the largest Duration. Sums and products that would exceed
// it stop there instead of wrapping.
const MaxDuration Duration = math.MaxInt64

// Clock[T] is the minimal API needed to read instants of type T from a
// clock. Both [github.com/noodlebox/timekeep/realtime.Clock] and
// [*github.com/noodlebox/timekeep/steppedtime.Clock] satisfy it.
type Clock[T Time[T]] interface {
	Now() T
}

// A Time represents an instant marked by the `Clock` that generated it. The
// standard library's `time.Time` implements `Time[time.Time]`.
type Time[T any] interface {
	Sub(T) Duration
}

// Since returns the time elapsed on c since start. Clocks set backwards
// yield zero rather than a negative duration.
func Since[T Time[T]](c Clock[T], start T) Duration {
	return saturatingSub(c.Now().Sub(start), 0)
}

// Mean returns total/count, or zero if count is zero.
func Mean(total Duration, count uint32) Duration {
	if count == 0 {
		return 0
	}
	return total / Duration(count)
}

// saturatingSub returns a-b, or zero if b exceeds a.
func saturatingSub(a, b Duration) Duration {
	if b >= a {
		return 0
	}
	return a - b
}

// saturatingAdd returns a+b for non-negative a and b, or MaxDuration if the
// sum overflows.
func saturatingAdd(a, b Duration) Duration {
	if a > MaxDuration-b {
		return MaxDuration
	}
	return a + b
}

// saturatingMul returns d*n for non-negative d, or MaxDuration if the
// product overflows.
func saturatingMul(d Duration, n uint32) Duration {
	if n != 0 && d > MaxDuration/Duration(n) {
		return MaxDuration
	}
	return d * Duration(n)
}
