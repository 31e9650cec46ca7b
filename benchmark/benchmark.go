package benchmark

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/noodlebox/timekeep"
	"github.com/noodlebox/timekeep/realtime"
)

// Benchmark times named sections of code. Starting a name that is already in
// flight replaces its start instant. A Benchmark is not safe for concurrent
// use.
type Benchmark[T timekeep.Time[T]] struct {
	clock timekeep.Clock[T]
	out   io.Writer

	running  map[string]T
	finished map[string]*timekeep.RunningAverage
}

// Option configures a Benchmark.
type Option func(*options)

type options struct {
	out io.Writer
}

// WithOutput sets the writer used by [Benchmark.Print]. The default is
// standard output.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.out = w
	}
}

// New returns an empty Benchmark timed by the real clock.
func New(opts ...Option) *Benchmark[time.Time] {
	return NewOn[time.Time](realtime.NewClock(), opts...)
}

// NewOn returns an empty Benchmark timed by c.
func NewOn[T timekeep.Time[T]](c timekeep.Clock[T], opts ...Option) *Benchmark[T] {
	o := options{out: os.Stdout}
	for _, opt := range opts {
		opt(&o)
	}
	return &Benchmark[T]{
		clock:    c,
		out:      o.out,
		running:  make(map[string]T),
		finished: make(map[string]*timekeep.RunningAverage),
	}
}

// Start begins timing name, discarding any earlier start that was never
// stopped.
func (b *Benchmark[T]) Start(name string) {
	b.running[name] = b.clock.Now()
}

// Stop ends timing name, adds the run to its results and returns its
// duration. It fails with [ErrNotStarted] if name is not in flight.
func (b *Benchmark[T]) Stop(name string) (time.Duration, error) {
	start, ok := b.running[name]
	if !ok {
		return 0, fmt.Errorf("stop %q: %w", name, ErrNotStarted)
	}
	delete(b.running, name)

	d := timekeep.Since(b.clock, start)
	avg, ok := b.finished[name]
	if !ok {
		avg = timekeep.NewRunningAverage()
		b.finished[name] = avg
	}
	avg.Add(d)
	return d, nil
}

// MustStop is like Stop but panics if name is not in flight.
func (b *Benchmark[T]) MustStop(name string) time.Duration {
	d, err := b.Stop(name)
	if err != nil {
		panic(err)
	}
	return d
}

// Time runs fn between a Start and Stop of name.
func (b *Benchmark[T]) Time(name string, fn func()) (time.Duration, error) {
	b.Start(name)
	fn()
	return b.Stop(name)
}

// Average returns the mean run time of name. It fails with [ErrNotStopped]
// if name has never been stopped.
func (b *Benchmark[T]) Average(name string) (time.Duration, error) {
	r, err := b.Result(name)
	if err != nil {
		return 0, err
	}
	return r.Average(), nil
}

// MustAverage is like Average but panics if name has never been stopped.
func (b *Benchmark[T]) MustAverage(name string) time.Duration {
	d, err := b.Average(name)
	if err != nil {
		panic(err)
	}
	return d
}

// Result returns the accumulated runs of name. It fails with
// [ErrNotStopped] if name has never been stopped.
func (b *Benchmark[T]) Result(name string) (Result, error) {
	avg, ok := b.finished[name]
	if !ok {
		return Result{}, fmt.Errorf("result %q: %w", name, ErrNotStopped)
	}
	return Result{Name: name, Count: avg.Count(), Total: avg.Total()}, nil
}

// Results returns the accumulated runs of every stopped name, sorted by
// name.
func (b *Benchmark[T]) Results() []Result {
	results := make([]Result, 0, len(b.finished))
	for name, avg := range b.finished {
		results = append(results, Result{Name: name, Count: avg.Count(), Total: avg.Total()})
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Name < results[j].Name
	})
	return results
}

// Running returns the names currently in flight, sorted.
func (b *Benchmark[T]) Running() []string {
	names := make([]string, 0, len(b.running))
	for name := range b.running {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
