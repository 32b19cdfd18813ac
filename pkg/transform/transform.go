package transform

// Number covers the built-in numeric types the reductions operate on.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Map applies fn to every element.
func Map[I, O any](items []I, fn func(I) O) []O {
	out := make([]O, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}

	return out
}

// Filter keeps the elements satisfying keep, in order.
func Filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}

	return out
}

// Chain threads value through every function in turn.
func Chain[T any](value T, fns ...func(T) T) T {
	for _, fn := range fns {
		value = fn(value)
	}

	return value
}

// Flatten concatenates the nested slices into one.
func Flatten[T any](nested [][]T) []T {
	total := 0
	for _, inner := range nested {
		total += len(inner)
	}

	out := make([]T, 0, total)
	for _, inner := range nested {
		out = append(out, inner...)
	}

	return out
}

// Windows returns every contiguous window of the given size, each one an
// independent copy. Sizes outside [1, len(items)] produce no windows.
func Windows[T any](items []T, size int) [][]T {
	if size < 1 || size > len(items) {
		return nil
	}

	out := make([][]T, 0, len(items)-size+1)
	for i := 0; i+size <= len(items); i++ {
		window := make([]T, size)
		copy(window, items[i:i+size])
		out = append(out, window)
	}

	return out
}

// Normalize rescales the values linearly to the [0, 1] range. All-equal
// input maps every value to 0.5.
func Normalize[T Number](values []T) []float64 {
	if len(values) == 0 {
		return []float64{}
	}

	minVal, maxVal := values[0], values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}

	out := make([]float64, len(values))

	if minVal == maxVal {
		for i := range out {
			out[i] = 0.5
		}

		return out
	}

	span := float64(maxVal) - float64(minVal)
	for i, v := range values {
		out[i] = (float64(v) - float64(minVal)) / span
	}

	return out
}

// Product multiplies the values together, starting from one.
func Product[T Number](values []T) T {
	product := T(1)
	for _, v := range values {
		product *= v
	}

	return product
}

// SumOfSquares sums the squares of the values.
func SumOfSquares[T Number](values []T) T {
	var total T
	for _, v := range values {
		total += v * v
	}

	return total
}

// FilterAbove keeps the map entries whose value exceeds threshold.
func FilterAbove[K comparable, V Number](values map[K]V, threshold V) map[K]V {
	out := make(map[K]V, len(values))
	for k, v := range values {
		if v > threshold {
			out[k] = v
		}
	}

	return out
}
