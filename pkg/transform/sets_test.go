package transform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"scrubkit/pkg/transform"
)

func TestDuplicates(t *testing.T) {
	t.Parallel()

	got := transform.Duplicates([]int{1, 2, 3, 2, 4, 5, 3, 2})
	assert.Equal(t, []int{2, 3}, got)

	assert.Empty(t, transform.Duplicates([]int{1, 2, 3}))
	assert.Empty(t, transform.Duplicates([]int{}))
}

func TestDuplicatesStrings(t *testing.T) {
	t.Parallel()

	got := transform.Duplicates([]string{"a", "b", "a", "c", "c", "a"})
	assert.Equal(t, []string{"a", "c"}, got)
}

func TestUnion(t *testing.T) {
	t.Parallel()

	got := transform.Union([]int{1, 2, 3}, []int{3, 4, 5})
	assert.Equal(t, []int{1, 2, 3, 4, 5}, got)

	deduped := transform.Union([]int{1, 1, 2}, []int{2, 3})
	assert.Equal(t, []int{1, 2, 3}, deduped)
}

func TestIntersection(t *testing.T) {
	t.Parallel()

	got := transform.Intersection([]int{1, 2, 3, 4}, []int{2, 4, 6})
	assert.Equal(t, []int{2, 4}, got)

	assert.Empty(t, transform.Intersection([]int{1, 3}, []int{2, 4}))
}

func TestDifference(t *testing.T) {
	t.Parallel()

	got := transform.Difference([]int{1, 2, 3, 4}, []int{2, 4})
	assert.Equal(t, []int{1, 3}, got)

	assert.Empty(t, transform.Difference([]int{1, 2}, []int{1, 2, 3}))
}

func TestSymmetricDifference(t *testing.T) {
	t.Parallel()

	got := transform.SymmetricDifference([]int{1, 2, 3}, []int{2, 3, 4})
	assert.Equal(t, []int{1, 4}, got)

	assert.Empty(t, transform.SymmetricDifference([]int{1, 2}, []int{2, 1}))
}
