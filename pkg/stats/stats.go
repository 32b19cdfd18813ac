// Package stats provides descriptive statistics for numeric samples.
package stats

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Stats bundles the descriptive statistics of one numeric sample.
type Stats struct {
	Mean   float64
	Median float64
	StdDev float64
}

// Describe computes the mean, median and population standard deviation of
// values. Empty input yields the zero Stats.
func Describe(values []float64) Stats {
	if len(values) == 0 {
		return Stats{}
	}

	return Stats{
		Mean:   stat.Mean(values, nil),
		Median: Median(values),
		StdDev: stat.PopStdDev(values, nil),
	}
}

// Median returns the middle element by sorted order, or the average of the
// two middle elements for even-sized input. Empty input yields zero.
func Median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}

	return (sorted[n/2-1] + sorted[n/2]) / 2
}
