package scrub

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cast"

	"scrubkit/pkg/scrub/model"
)

// toFloat reports the numeric value of v for the built-in numeric kinds.
// Strings and bools never coerce here, they are their own kind of value.
func toFloat(v any) (float64, bool) {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		f, err := cast.ToFloat64E(v)
		if err != nil {
			return 0, false
		}

		return f, true
	}

	return 0, false
}

// equalValues compares two record values. Numbers compare across numeric
// types, every other pair must match on both type and value.
func equalValues(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if aok || bok {
		return aok && bok && af == bf
	}

	return a == b
}

// canonicalKey reduces a record value to a comparable key, so cross-type
// numeric duplicates collide in map lookups.
func canonicalKey(v any) any {
	if v == nil {
		return nil
	}

	if f, ok := toFloat(v); ok {
		return f
	}

	switch v.(type) {
	case string, bool:
		return v
	}

	return fmt.Sprintf("%T(%v)", v, v)
}

// fingerprint returns an order-independent identity for the full record.
func fingerprint(record model.Record) string {
	fields := make([]string, 0, len(record))
	for field := range record {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var sb strings.Builder
	for _, field := range fields {
		fmt.Fprintf(&sb, "%s=%#v;", field, canonicalKey(record[field]))
	}

	return sb.String()
}
