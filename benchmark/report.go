package benchmark

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// Print writes the report of [Benchmark.Fprint] to the Benchmark's output,
// standard output unless configured with [WithOutput]. Write errors are
// ignored.
func (b *Benchmark[T]) Print() {
	_ = b.Fprint(b.out)
}

// Fprint writes one line per stopped name to w, in the form
//
//	Benchmark results:
//	<name> - count: <count> - total: <total>ms - average: <average>ms
func (b *Benchmark[T]) Fprint(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "Benchmark results:"); err != nil {
		return err
	}
	for _, r := range b.Results() {
		_, err := fmt.Fprintf(w, "%s - count: %d - total: %dms - average: %dms\n",
			r.Name, r.Count, r.Total.Milliseconds(), r.Average().Milliseconds())
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteTable renders the results as a table on w.
func (b *Benchmark[T]) WriteTable(w io.Writer) error {
	table := tablewriter.NewWriter(w)
	table.Header("Name", "Count", "Total", "Average")
	for _, r := range b.Results() {
		err := table.Append([]string{
			r.Name,
			strconv.FormatUint(uint64(r.Count), 10),
			fmt.Sprintf("%dms", r.Total.Milliseconds()),
			fmt.Sprintf("%dms", r.Average().Milliseconds()),
		})
		if err != nil {
			return err
		}
	}
	return table.Render()
}

// Log emits one record per stopped name on logger at info level.
func (b *Benchmark[T]) Log(logger *slog.Logger) {
	for _, r := range b.Results() {
		logger.Info("benchmark result", slog.Any("benchmark", r))
	}
}
