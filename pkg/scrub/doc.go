// Package scrub provides cleaning primitives for in-memory datasets of
// key-value records, together with a staged pipeline composing them.
//
// The primitives are pure functions over records, strings and numeric
// slices: duplicate removal, range and criteria filtering, outlier removal,
// missing-value handling, text normalisation, validation and grouping. Each
// preserves the input order of whatever survives and fails open on
// unrecognised input instead of returning an error.
//
// CleanDataset composes a subset of the primitives based on a model.Config
// and reports how many records every stage removed. Observability attaches
// through model.PipelineOption hooks: the measure package collects per-stage
// counts and durations, and the drawer package renders the executed stage
// chain as a graph.
package scrub
