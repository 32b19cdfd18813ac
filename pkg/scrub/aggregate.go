package scrub

import "scrubkit/pkg/scrub/model"

// Group is one bucket produced by GroupByField.
type Group struct {
	// Key is the grouping value as first seen on a record, nil for the
	// records lacking the field.
	Key any
	// Records holds the bucket members in input order.
	Records []model.Record
}

// GroupByField buckets the records by their value under field. Buckets appear
// in first-seen order, numeric values of different types share a bucket, and
// records lacking the field land in a nil-key bucket.
func GroupByField(records []model.Record, field string) []Group {
	index := make(map[any]int, len(records))
	groups := make([]Group, 0)

	for _, record := range records {
		key := canonicalKey(record[field])

		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, Group{Key: record[field]})
		}

		groups[i].Records = append(groups[i].Records, record)
	}

	return groups
}
