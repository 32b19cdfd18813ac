package transform

// Duplicates returns the values appearing more than once, each reported once,
// ordered by where its first repeat was seen.
func Duplicates[T comparable](items []T) []T {
	seen := make(map[T]struct{}, len(items))
	reported := make(map[T]struct{})

	var out []T

	for _, item := range items {
		if _, ok := seen[item]; ok {
			if _, done := reported[item]; !done {
				reported[item] = struct{}{}
				out = append(out, item)
			}

			continue
		}
		seen[item] = struct{}{}
	}

	return out
}

// Union returns the distinct values of a followed by the distinct values of b
// not already present.
func Union[T comparable](a, b []T) []T {
	seen := make(map[T]struct{}, len(a)+len(b))
	out := make([]T, 0, len(a)+len(b))

	for _, item := range a {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}

	for _, item := range b {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}

	return out
}

// Intersection returns the distinct values present in both slices, ordered as
// in a.
func Intersection[T comparable](a, b []T) []T {
	inB := toSet(b)
	taken := make(map[T]struct{}, len(a))
	out := make([]T, 0, len(a))

	for _, item := range a {
		if _, ok := inB[item]; !ok {
			continue
		}
		if _, ok := taken[item]; ok {
			continue
		}
		taken[item] = struct{}{}
		out = append(out, item)
	}

	return out
}

// Difference returns the distinct values of a absent from b, ordered as in a.
func Difference[T comparable](a, b []T) []T {
	inB := toSet(b)
	taken := make(map[T]struct{}, len(a))
	out := make([]T, 0, len(a))

	for _, item := range a {
		if _, ok := inB[item]; ok {
			continue
		}
		if _, ok := taken[item]; ok {
			continue
		}
		taken[item] = struct{}{}
		out = append(out, item)
	}

	return out
}

// SymmetricDifference returns the values present in exactly one of the two
// slices: the ones unique to a first, then the ones unique to b.
func SymmetricDifference[T comparable](a, b []T) []T {
	out := Difference(a, b)

	return append(out, Difference(b, a)...)
}

func toSet[T comparable](items []T) map[T]struct{} {
	set := make(map[T]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}

	return set
}
