package scrub_test

import (
	"testing"

	"scrubkit/pkg/scrub/model"
)

// fp builds a nullable numeric entry.
func fp(v float64) *float64 {
	return &v
}

func cloneRecords(t *testing.T, records []model.Record) []model.Record {
	t.Helper()

	out := make([]model.Record, len(records))
	for i, record := range records {
		clone := make(model.Record, len(record))
		for k, v := range record {
			clone[k] = v
		}
		out[i] = clone
	}

	return out
}
