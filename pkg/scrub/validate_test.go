package scrub_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"scrubkit/pkg/scrub"
	"scrubkit/pkg/scrub/model"
)

func TestValidateEmail(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		email    string
		expected bool
	}{
		"plain":            {email: "user@example.com", expected: true},
		"tagged":           {email: "first.last+tag@sub.domain.org", expected: true},
		"consecutive dots": {email: "user..name@example.com", expected: true},
		"leading dot host": {email: "user@.example.com", expected: true},
		"no tld":           {email: "user@domain", expected: false},
		"short tld":        {email: "user@example.c", expected: false},
		"missing local":    {email: "@example.com", expected: false},
		"space in local":   {email: "user name@example.com", expected: false},
		"empty":            {email: "", expected: false},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, scrub.ValidateEmail(tc.email))
		})
	}
}

func TestValidateNumericRange(t *testing.T) {
	t.Parallel()

	assert.True(t, scrub.ValidateNumericRange(5, 1, 10))
	assert.True(t, scrub.ValidateNumericRange(1, 1, 10))
	assert.True(t, scrub.ValidateNumericRange(10, 1, 10))
	assert.False(t, scrub.ValidateNumericRange(0.999, 1, 10))
	assert.False(t, scrub.ValidateNumericRange(10.001, 1, 10))
}

func TestFilterInvalid(t *testing.T) {
	t.Parallel()

	validators := map[string]scrub.FieldValidator{
		"email": func(value any) bool {
			s, ok := value.(string)

			return ok && scrub.ValidateEmail(s)
		},
	}

	records := []model.Record{
		{"id": 1, "email": "good@example.com"},
		{"id": 2, "email": "not-an-email"},
		{"id": 3},
	}

	got := scrub.FilterInvalid(records, validators)

	// The record without the field is not checked.
	assert.Equal(t, []model.Record{
		{"id": 1, "email": "good@example.com"},
		{"id": 3},
	}, got)
}

func TestFilterInvalidNoValidators(t *testing.T) {
	t.Parallel()

	records := []model.Record{{"id": 1}, {"id": 2}}

	assert.Equal(t, records, scrub.FilterInvalid(records, nil))
}
