// Package transform provides generic helpers for reshaping slices and maps:
// mapping, filtering, flattening, windowing, pivoting and set arithmetic.
// Everything returns deterministic, input-ordered results.
package transform
