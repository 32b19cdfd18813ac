package scrub

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

var nonCurrency = regexp.MustCompile(`[^0-9.]`)

// ConvertToNumeric coerces each value to a float64, best effort. Entries that
// do not parse, nil included, become nil.
func ConvertToNumeric(values []any) []*float64 {
	out := make([]*float64, len(values))

	for i, v := range values {
		if v == nil {
			continue
		}

		if s, ok := v.(string); ok {
			v = strings.TrimSpace(s)
		}

		f, err := cast.ToFloat64E(v)
		if err != nil {
			continue
		}
		out[i] = &f
	}

	return out
}

// CleanCurrency strips currency symbols and separators, keeping digits and
// the decimal point, then parses the remainder. A value that still does not
// parse comes back nil.
func CleanCurrency(text string) *float64 {
	cleaned := nonCurrency.ReplaceAllString(text, "")

	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil
	}

	return &f
}
