package scrub_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"scrubkit/pkg/scrub"
)

func TestConvertToNumeric(t *testing.T) {
	t.Parallel()

	got := scrub.ConvertToNumeric([]any{"12.5", 3, true, nil, "abc", " 7 ", ""})

	assert.Equal(t, []*float64{fp(12.5), fp(3), fp(1), nil, nil, fp(7), nil}, got)
}

func TestConvertToNumericEmpty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, scrub.ConvertToNumeric(nil))
}

func TestCleanCurrency(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input    string
		expected *float64
	}{
		"dollars":       {input: "$1,234.56", expected: fp(1234.56)},
		"euros":         {input: "€99", expected: fp(99)},
		"plain":         {input: "12.34", expected: fp(12.34)},
		"currency code": {input: "USD 42.00", expected: fp(42)},
		"not a number":  {input: "abc", expected: nil},
		"two points":    {input: "1.2.3", expected: nil},
		"empty":         {input: "", expected: nil},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, scrub.CleanCurrency(tc.input))
		})
	}
}
