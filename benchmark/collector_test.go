package benchmark_test

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noodlebox/timekeep/benchmark"
)

func TestCollector(t *testing.T) {
	b := populated()
	c := benchmark.NewCollector("", b.Results)

	expected := `
# HELP timekeep_benchmark_runs_total Number of completed runs per benchmark name.
# TYPE timekeep_benchmark_runs_total counter
timekeep_benchmark_runs_total{name="alloc"} 1
timekeep_benchmark_runs_total{name="decode"} 2
# HELP timekeep_benchmark_duration_seconds_total Total time spent in completed runs per benchmark name.
# TYPE timekeep_benchmark_duration_seconds_total counter
timekeep_benchmark_duration_seconds_total{name="alloc"} 0.0015
timekeep_benchmark_duration_seconds_total{name="decode"} 0.04
# HELP timekeep_benchmark_average_seconds Mean duration of completed runs per benchmark name.
# TYPE timekeep_benchmark_average_seconds gauge
timekeep_benchmark_average_seconds{name="alloc"} 0.0015
timekeep_benchmark_average_seconds{name="decode"} 0.02
`
	require.NoError(t, testutil.CollectAndCompare(c, strings.NewReader(expected)))
}

func TestCollectorRegister(t *testing.T) {
	b := populated()
	reg := prometheus.NewPedanticRegistry()
	require.NoError(t, reg.Register(benchmark.NewCollector("app", b.Results)))

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.ElementsMatch(t, []string{
		"app_benchmark_runs_total",
		"app_benchmark_duration_seconds_total",
		"app_benchmark_average_seconds",
	}, names)
}

func TestCollectorEmpty(t *testing.T) {
	c := benchmark.NewCollector("", func() []benchmark.Result { return nil })
	assert.Equal(t, 0, testutil.CollectAndCount(c))
}
