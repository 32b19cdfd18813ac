package scrub

import (
	"strings"

	"gonum.org/v1/gonum/stat"

	"scrubkit/pkg/scrub/model"
)

// RemoveNulls drops the nil entries, preserving order.
func RemoveNulls[T any](values []*T) []*T {
	out := make([]*T, 0, len(values))

	for _, v := range values {
		if v == nil {
			continue
		}
		out = append(out, v)
	}

	return out
}

// RemoveEmptyStrings drops the strings that are empty once trimmed.
func RemoveEmptyStrings(values []string) []string {
	out := make([]string, 0, len(values))

	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			continue
		}
		out = append(out, v)
	}

	return out
}

// FillMissing replaces the nil entries with fillValue. When fillValue is nil
// the mean of the non-missing entries is used instead; when every entry is
// missing the input comes back unchanged, since no mean exists.
func FillMissing(data []*float64, fillValue *float64) []*float64 {
	if fillValue == nil {
		known := make([]float64, 0, len(data))
		for _, v := range data {
			if v != nil {
				known = append(known, *v)
			}
		}

		if len(known) == 0 {
			return data
		}

		mean := stat.Mean(known, nil)
		fillValue = &mean
	}

	out := make([]*float64, len(data))
	for i, v := range data {
		if v == nil {
			out[i] = fillValue

			continue
		}
		out[i] = v
	}

	return out
}

// RemoveMissingFields keeps the records carrying every required field with a
// non-nil, non-empty value. The empty check is an exact comparison, untrimmed
// whitespace counts as present.
func RemoveMissingFields(records []model.Record, requiredFields []string) []model.Record {
	out := make([]model.Record, 0, len(records))

	for _, record := range records {
		if hasRequiredFields(record, requiredFields) {
			out = append(out, record)
		}
	}

	return out
}

func hasRequiredFields(record model.Record, requiredFields []string) bool {
	for _, field := range requiredFields {
		value, ok := record[field]
		if !ok || value == nil || value == "" {
			return false
		}
	}

	return true
}
