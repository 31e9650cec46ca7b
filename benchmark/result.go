package benchmark

import (
	"log/slog"
	"time"

	"github.com/noodlebox/timekeep"
)

// Result holds the accumulated runs of one benchmark name.
type Result struct {
	Name  string
	Count uint32
	Total time.Duration
}

// Average returns the mean run time, or zero if there were no runs.
func (r Result) Average() time.Duration {
	return timekeep.Mean(r.Total, r.Count)
}

// LogValue implements [slog.LogValuer].
func (r Result) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("name", r.Name),
		slog.Uint64("count", uint64(r.Count)),
		slog.Int64("total_ms", r.Total.Milliseconds()),
		slog.Int64("average_ms", r.Average().Milliseconds()),
	)
}
