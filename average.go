package timekeep

// RunningAverage accumulates externally measured durations and reports
// their mean. The zero value is an empty RunningAverage ready for use.
type RunningAverage struct {
	count uint32
	total Duration
}

// NewRunningAverage returns an empty RunningAverage.
func NewRunningAverage() *RunningAverage {
	return &RunningAverage{}
}

// Add records one sample. Negative durations count as zero, and the total
// stops growing at MaxDuration.
func (a *RunningAverage) Add(d Duration) {
	a.count++
	a.total = saturatingAdd(a.total, saturatingSub(d, 0))
}

// Count returns the number of samples recorded.
func (a *RunningAverage) Count() uint32 {
	return a.count
}

// Total returns the sum of all samples.
func (a *RunningAverage) Total() Duration {
	return a.total
}

// Average returns the mean sample, or zero if nothing was recorded.
func (a *RunningAverage) Average() Duration {
	return Mean(a.total, a.count)
}

// Interpolate projects the total time of remaining more samples, assuming
// each costs the current average. The projection saturates at MaxDuration.
func (a *RunningAverage) Interpolate(remaining uint32) Duration {
	return saturatingMul(a.Average(), remaining)
}
