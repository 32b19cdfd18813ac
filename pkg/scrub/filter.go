package scrub

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"scrubkit/pkg/scrub/model"
)

// Outlier filter methods.
const (
	OutlierMethodIQR    = "iqr"
	OutlierMethodStdDev = "std"
)

// FilterByRange keeps the values within [minValue, maxValue], bounds
// included, in their original order.
func FilterByRange(data []float64, minValue, maxValue float64) []float64 {
	out := make([]float64, 0, len(data))

	for _, v := range data {
		if v >= minValue && v <= maxValue {
			out = append(out, v)
		}
	}

	return out
}

// FilterByCriteria keeps the records matching every field/value pair in
// criteria. A record lacking one of the fields never matches, whatever the
// wanted value.
func FilterByCriteria(records []model.Record, criteria map[string]any) []model.Record {
	out := make([]model.Record, 0, len(records))

	for _, record := range records {
		if matchesCriteria(record, criteria) {
			out = append(out, record)
		}
	}

	return out
}

func matchesCriteria(record model.Record, criteria map[string]any) bool {
	for field, want := range criteria {
		got, ok := record[field]
		if !ok {
			return false
		}
		if !equalValues(got, want) {
			return false
		}
	}

	return true
}

// FilterOutliers drops the outliers from data using the requested method,
// OutlierMethodIQR or OutlierMethodStdDev. The surviving values keep their
// original order. An unknown method returns the input unchanged.
func FilterOutliers(data []float64, method string) []float64 {
	if len(data) == 0 {
		return []float64{}
	}

	switch method {
	case OutlierMethodIQR:
		return filterOutliersIQR(data)
	case OutlierMethodStdDev:
		return filterOutliersStdDev(data)
	}

	return data
}

// filterOutliersIQR keeps the values within 1.5 IQR of the quartiles. The
// quartiles are the sorted elements at n/4 and 3n/4, not interpolated ones,
// so small inputs diverge from textbook quartile values.
func filterOutliersIQR(data []float64) []float64 {
	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)

	n := len(sorted)
	q1 := sorted[n/4]
	q3 := sorted[(3*n)/4]
	iqr := q3 - q1

	return FilterByRange(data, q1-1.5*iqr, q3+1.5*iqr)
}

// filterOutliersStdDev keeps the values within three population standard
// deviations of the mean.
func filterOutliersStdDev(data []float64) []float64 {
	mean := stat.Mean(data, nil)
	stdDev := stat.PopStdDev(data, nil)

	return FilterByRange(data, mean-3*stdDev, mean+3*stdDev)
}
