package scrub

import "scrubkit/pkg/scrub/model"

// RemoveDuplicates drops repeated values, keeping the first occurrence of
// each and preserving the input order.
func RemoveDuplicates[T comparable](items []T) []T {
	seen := make(map[T]struct{}, len(items))
	out := make([]T, 0, len(items))

	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}

	return out
}

// RemoveDuplicatesByKey drops records whose value under key was already seen,
// keeping the first occurrence. Records missing the key all share the nil key
// value, so only the first of them survives.
func RemoveDuplicatesByKey(records []model.Record, key string) []model.Record {
	seen := make(map[any]struct{}, len(records))
	out := make([]model.Record, 0, len(records))

	for _, record := range records {
		k := canonicalKey(record[key])
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, record)
	}

	return out
}

// FindDuplicateRows returns every record whose full field set and values
// already appeared earlier in the dataset. The first occurrence counts as the
// original and is not reported.
func FindDuplicateRows(records []model.Record) []model.Record {
	seen := make(map[string]struct{}, len(records))

	var duplicates []model.Record

	for _, record := range records {
		fp := fingerprint(record)
		if _, ok := seen[fp]; ok {
			duplicates = append(duplicates, record)

			continue
		}
		seen[fp] = struct{}{}
	}

	return duplicates
}
