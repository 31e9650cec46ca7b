// Package steppedtime provides a clock that never advances on its own. Time
// moves only through [Clock.Set] and [Clock.Step], which makes it suitable
// for deterministic tests of code that measures elapsed time.
package steppedtime
