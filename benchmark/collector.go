package benchmark

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Collector exports benchmark results as Prometheus metrics, labelled by
// benchmark name. Results are read on every scrape, so a Benchmark that is
// also used from other goroutines needs the snapshot function to hold
// whatever lock guards it.
type Collector struct {
	results func() []Result

	runs    *prometheus.Desc
	total   *prometheus.Desc
	average *prometheus.Desc
}

// NewCollector returns a Collector reading results on each scrape. Metric
// names are prefixed with namespace, "timekeep" if empty.
func NewCollector(namespace string, results func() []Result) *Collector {
	if namespace == "" {
		namespace = "timekeep"
	}
	labels := []string{"name"}
	return &Collector{
		results: results,
		runs: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "benchmark", "runs_total"),
			"Number of completed runs per benchmark name.",
			labels, nil,
		),
		total: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "benchmark", "duration_seconds_total"),
			"Total time spent in completed runs per benchmark name.",
			labels, nil,
		),
		average: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "benchmark", "average_seconds"),
			"Mean duration of completed runs per benchmark name.",
			labels, nil,
		),
	}
}

// Describe implements [prometheus.Collector].
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.runs
	ch <- c.total
	ch <- c.average
}

// Collect implements [prometheus.Collector].
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	for _, r := range c.results() {
		ch <- prometheus.MustNewConstMetric(c.runs, prometheus.CounterValue, float64(r.Count), r.Name)
		ch <- prometheus.MustNewConstMetric(c.total, prometheus.CounterValue, r.Total.Seconds(), r.Name)
		ch <- prometheus.MustNewConstMetric(c.average, prometheus.GaugeValue, r.Average().Seconds(), r.Name)
	}
}
