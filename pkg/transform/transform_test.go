package transform_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"scrubkit/pkg/transform"
)

func TestMap(t *testing.T) {
	t.Parallel()

	got := transform.Map([]int{1, 2, 3}, func(i int) int { return i * 2 })
	assert.Equal(t, []int{2, 4, 6}, got)

	asStrings := transform.Map([]int{1, 2}, strconv.Itoa)
	assert.Equal(t, []string{"1", "2"}, asStrings)
}

func TestFilter(t *testing.T) {
	t.Parallel()

	got := transform.Filter([]int{1, 2, 3, 4, 5, 6}, func(i int) bool { return i%2 == 0 })
	assert.Equal(t, []int{2, 4, 6}, got)

	none := transform.Filter([]int{1, 3}, func(i int) bool { return i%2 == 0 })
	assert.Empty(t, none)
}

func TestChain(t *testing.T) {
	t.Parallel()

	double := func(i int) int { return i * 2 }
	increment := func(i int) int { return i + 1 }

	assert.Equal(t, 11, transform.Chain(5, double, increment))
	assert.Equal(t, 12, transform.Chain(5, increment, double))
	assert.Equal(t, 5, transform.Chain(5))
}

func TestFlatten(t *testing.T) {
	t.Parallel()

	got := transform.Flatten([][]int{{1, 2}, {3}, {}, {4, 5}})
	assert.Equal(t, []int{1, 2, 3, 4, 5}, got)

	assert.Empty(t, transform.Flatten([][]int{}))
}

func TestWindows(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input    []int
		size     int
		expected [][]int
	}{
		"size three":      {input: []int{1, 2, 3, 4, 5}, size: 3, expected: [][]int{{1, 2, 3}, {2, 3, 4}, {3, 4, 5}}},
		"size one":        {input: []int{1, 2, 3}, size: 1, expected: [][]int{{1}, {2}, {3}}},
		"size equals len": {input: []int{1, 2, 3}, size: 3, expected: [][]int{{1, 2, 3}}},
		"size too large":  {input: []int{1, 2}, size: 3, expected: nil},
		"size zero":       {input: []int{1, 2}, size: 0, expected: nil},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, transform.Windows(tc.input, tc.size))
		})
	}
}

func TestWindowsCopies(t *testing.T) {
	t.Parallel()

	input := []int{1, 2, 3}
	got := transform.Windows(input, 2)

	got[0][0] = 99
	assert.Equal(t, []int{1, 2, 3}, input)
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	got := transform.Normalize([]int{0, 5, 10})
	assert.InDeltaSlice(t, []float64{0, 0.5, 1}, got, 1e-9)

	negatives := transform.Normalize([]float64{-10, 0, 10})
	assert.InDeltaSlice(t, []float64{0, 0.5, 1}, negatives, 1e-9)
}

func TestNormalizeAllEqual(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []float64{0.5, 0.5, 0.5}, transform.Normalize([]int{4, 4, 4}))
	assert.Equal(t, []float64{0.5}, transform.Normalize([]int{7}))
}

func TestNormalizeEmpty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []float64{}, transform.Normalize([]int{}))
}

func TestProduct(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 24, transform.Product([]int{2, 3, 4}))
	assert.Equal(t, 1, transform.Product([]int{}))
	assert.InDelta(t, 2.5, transform.Product([]float64{0.5, 5}), 1e-9)
}

func TestSumOfSquares(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 55, transform.SumOfSquares([]int{1, 2, 3, 4, 5}))
	assert.Zero(t, transform.SumOfSquares([]int{}))
	assert.InDelta(t, 1.25, transform.SumOfSquares([]float64{0.5, 1}), 1e-9)
}

func TestFilterAbove(t *testing.T) {
	t.Parallel()

	got := transform.FilterAbove(map[string]int{"a": 1, "b": 5, "c": 10}, 4)
	assert.Equal(t, map[string]int{"b": 5, "c": 10}, got)

	assert.Empty(t, transform.FilterAbove(map[string]int{"a": 1}, 1))
}
