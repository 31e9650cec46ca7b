// Package timekeep offers small timing utilities built on top of a
// pluggable clock: a [Stopwatch], a [Countdown] timer and a
// [RunningAverage] accumulator. Each type reads time through a [Clock], so
// the real clock from [github.com/noodlebox/timekeep/realtime] may be
// swapped for a manually driven one such as
// [github.com/noodlebox/timekeep/steppedtime] in tests. Named benchmarking
// timers live in [github.com/noodlebox/timekeep/benchmark].
//
// None of the types here are safe for concurrent use. Callers sharing one
// between goroutines must provide their own synchronization.
package timekeep
