// Package realtime provides a thin wrapper around the [time] package. It
// works with [time.Time] and [time.Duration] values, and readings from
// [Clock.Now] carry the monotonic clock reading used for elapsed times.
package realtime
