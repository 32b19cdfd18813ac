package model

// Record is a single row of tabular data, mapping field names to values of
// heterogeneous type: text, number, bool or nil.
type Record map[string]any
