package scrub

import (
	"regexp"

	"scrubkit/pkg/scrub/model"
)

// FieldValidator reports whether a single field value is acceptable.
type FieldValidator func(value any) bool

// Deliberately permissive, full RFC 5322 validation is out of scope.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail reports whether email looks like local@domain.tld.
func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidateNumericRange reports whether value lies within [minValue,
// maxValue], bounds included.
func ValidateNumericRange(value, minValue, maxValue float64) bool {
	return value >= minValue && value <= maxValue
}

// FilterInvalid keeps the records whose present fields pass their validators.
// A field with a validator but absent from a record is not checked, required
// fields are the business of RemoveMissingFields.
func FilterInvalid(records []model.Record, validators map[string]FieldValidator) []model.Record {
	out := make([]model.Record, 0, len(records))

	for _, record := range records {
		if validRecord(record, validators) {
			out = append(out, record)
		}
	}

	return out
}

func validRecord(record model.Record, validators map[string]FieldValidator) bool {
	for field, validator := range validators {
		value, ok := record[field]
		if !ok {
			continue
		}
		if !validator(value) {
			return false
		}
	}

	return true
}
