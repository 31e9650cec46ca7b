// Package benchmark provides named timers for ad hoc benchmarking of code
// sections. A [Benchmark] keeps the start instant of every in-flight name and
// accumulates a count and total duration for every name once stopped, so a
// name may be started and stopped any number of times.
//
// Results can be reported as plain text ([Benchmark.Print],
// [Benchmark.Fprint]), as a table ([Benchmark.WriteTable]), as structured
// log records ([Benchmark.Log]) or exported to Prometheus through a
// [Collector].
package benchmark
