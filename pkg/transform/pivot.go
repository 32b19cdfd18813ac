package transform

// Pivot converts row records into a column-oriented map. The column set comes
// from the first record: later fields unknown to it are ignored, and a record
// missing a column simply contributes nothing to it.
func Pivot[M ~map[string]V, V any](records []M) map[string][]V {
	if len(records) == 0 {
		return map[string][]V{}
	}

	columns := make(map[string][]V, len(records[0]))
	for field := range records[0] {
		columns[field] = make([]V, 0, len(records))
	}

	for _, record := range records {
		for field, value := range record {
			if _, ok := columns[field]; !ok {
				continue
			}
			columns[field] = append(columns[field], value)
		}
	}

	return columns
}
