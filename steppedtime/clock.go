package steppedtime

import (
	"sync"
)

// Clock is a clock whose time only moves when told to. A new Clock starts
// at the zero Time.
type Clock struct {
	now Time

	mu sync.Mutex
}

func NewClock() *Clock {
	return &Clock{}
}

// NewClockAt returns a Clock set to now.
func NewClockAt(now Time) *Clock {
	return &Clock{now: now}
}

func (c *Clock) lock()   { c.mu.Lock() }
func (c *Clock) unlock() { c.mu.Unlock() }

// Set changes the current time to now. An earlier value than the previous
// setting is allowed, but durations measured across it come out negative.
func (c *Clock) Set(now Time) {
	c.lock()
	c.now = now
	c.unlock()
}

// Step advances the current time by dt.
func (c *Clock) Step(dt Duration) {
	c.lock()
	c.now = c.now.Add(dt)
	c.unlock()
}

func (c *Clock) Now() (now Time) {
	c.lock()
	now = c.now
	c.unlock()
	return
}
