package scrub

import (
	"regexp"
	"strings"
)

var (
	specialChars          = regexp.MustCompile(`[^a-zA-Z0-9]`)
	specialCharsKeepSpace = regexp.MustCompile(`[^a-zA-Z0-9\s]`)
	nonDigits             = regexp.MustCompile(`[^0-9]`)
)

// CleanWhitespace collapses whitespace runs to single spaces and trims both
// ends.
func CleanWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// RemoveSpecialChars strips everything outside ASCII letters and digits,
// keeping whitespace when asked to. Accented letters count as special and go
// too.
func RemoveSpecialChars(text string, keepSpaces bool) string {
	if keepSpaces {
		return specialCharsKeepSpace.ReplaceAllString(text, "")
	}

	return specialChars.ReplaceAllString(text, "")
}

// CleanStringList trims and lowercases every entry, dropping the ones left
// empty.
func CleanStringList(values []string) []string {
	out := make([]string, 0, len(values))

	for _, v := range values {
		cleaned := strings.ToLower(strings.TrimSpace(v))
		if cleaned == "" {
			continue
		}
		out = append(out, cleaned)
	}

	return out
}

// StandardizePhone strips everything but digits and formats ten-digit numbers
// as (AAA) BBB-CCCC. Any other digit count comes back as the bare digits.
func StandardizePhone(phone string) string {
	digits := nonDigits.ReplaceAllString(phone, "")
	if len(digits) != 10 {
		return digits
	}

	return "(" + digits[:3] + ") " + digits[3:6] + "-" + digits[6:]
}

// StandardizeEmail trims and lowercases.
func StandardizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// StandardizeDates swaps / and . separators for -. The text is not validated
// as a calendar date.
func StandardizeDates(date string) string {
	date = strings.ReplaceAll(date, "/", "-")

	return strings.ReplaceAll(date, ".", "-")
}

// NormalizeCategories maps each value through mapping, looked up by its
// lowercased form. Unmapped values pass through unchanged.
func NormalizeCategories(values []string, mapping map[string]string) []string {
	out := make([]string, 0, len(values))

	for _, v := range values {
		if mapped, ok := mapping[strings.ToLower(v)]; ok {
			out = append(out, mapped)

			continue
		}
		out = append(out, v)
	}

	return out
}
