package scrub_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"scrubkit/pkg/scrub"
	"scrubkit/pkg/scrub/model"
)

func TestRemoveNulls(t *testing.T) {
	t.Parallel()

	got := scrub.RemoveNulls([]*float64{fp(1), nil, fp(2), nil, fp(3)})
	assert.Equal(t, []*float64{fp(1), fp(2), fp(3)}, got)
}

func TestRemoveNullsEmpty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, scrub.RemoveNulls([]*float64{nil, nil}))
}

func TestRemoveEmptyStrings(t *testing.T) {
	t.Parallel()

	got := scrub.RemoveEmptyStrings([]string{"a", "", "  ", "\t", "b"})
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestFillMissingWithMean(t *testing.T) {
	t.Parallel()

	data := []*float64{fp(10), nil, fp(20), nil, fp(30), fp(40)}

	got := scrub.FillMissing(data, nil)

	assert.Equal(t, []*float64{fp(10), fp(25), fp(20), fp(25), fp(30), fp(40)}, got)
}

func TestFillMissingExplicit(t *testing.T) {
	t.Parallel()

	got := scrub.FillMissing([]*float64{nil, fp(5), nil}, fp(0))

	assert.Equal(t, []*float64{fp(0), fp(5), fp(0)}, got)
}

func TestFillMissingAllMissing(t *testing.T) {
	t.Parallel()

	// No mean exists, the input comes back unchanged.
	got := scrub.FillMissing([]*float64{nil, nil}, nil)

	assert.Equal(t, []*float64{nil, nil}, got)
}

func TestRemoveMissingFields(t *testing.T) {
	t.Parallel()

	records := []model.Record{
		{"id": 1, "name": "a"},
		{"id": 2},
		{"id": 3, "name": nil},
		{"id": 4, "name": ""},
		{"id": 5, "name": " "},
	}

	got := scrub.RemoveMissingFields(records, []string{"name"})

	// The empty check is exact, the whitespace-only name counts as present.
	assert.Equal(t, []model.Record{
		{"id": 1, "name": "a"},
		{"id": 5, "name": " "},
	}, got)
}

func TestRemoveMissingFieldsNoRequirements(t *testing.T) {
	t.Parallel()

	records := []model.Record{{"id": 1}, {}}

	assert.Equal(t, records, scrub.RemoveMissingFields(records, nil))
}
