package benchmark

import (
	"errors"
)

var (
	// ErrNotStarted is returned when stopping a name that is not in flight.
	ErrNotStarted = errors.New("benchmark not started")

	// ErrNotStopped is returned when asking for results of a name that was
	// never stopped.
	ErrNotStopped = errors.New("benchmark never stopped")
)
