package scrub

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"scrubkit/pkg/scrub/model"
)

func TestEqualValues(t *testing.T) {
	tcs := map[string]struct {
		a        any
		b        any
		expected bool
	}{
		"int vs float":      {a: 1, b: 1.0, expected: true},
		"int64 vs int":      {a: int64(2), b: 2, expected: true},
		"string vs number":  {a: "1", b: 1, expected: false},
		"both nil":          {a: nil, b: nil, expected: true},
		"nil vs zero":       {a: nil, b: 0, expected: false},
		"equal strings":     {a: "a", b: "a", expected: true},
		"bool vs number":    {a: true, b: 1, expected: false},
		"equal bools":       {a: true, b: true, expected: true},
		"different numbers": {a: 1, b: 2, expected: false},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, equalValues(tc.a, tc.b))
		})
	}
}

func TestCanonicalKey(t *testing.T) {
	assert.Equal(t, canonicalKey(1), canonicalKey(1.0))
	assert.Equal(t, canonicalKey(int64(3)), canonicalKey(3.0))
	assert.NotEqual(t, canonicalKey("1"), canonicalKey(1))
	assert.NotEqual(t, canonicalKey(true), canonicalKey(1))
	assert.Nil(t, canonicalKey(nil))
}

func TestFingerprint(t *testing.T) {
	assert.Equal(t,
		fingerprint(model.Record{"a": 1, "b": 2}),
		fingerprint(model.Record{"b": 2, "a": 1}),
	)

	assert.Equal(t,
		fingerprint(model.Record{"n": 1}),
		fingerprint(model.Record{"n": 1.0}),
	)

	assert.NotEqual(t,
		fingerprint(model.Record{"a": 1, "b": 2}),
		fingerprint(model.Record{"a": 1, "b": 3}),
	)

	assert.NotEqual(t,
		fingerprint(model.Record{"n": "1"}),
		fingerprint(model.Record{"n": 1}),
	)
}
