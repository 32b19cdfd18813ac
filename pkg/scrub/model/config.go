package model

// Config selects which cleaning stages run. Zero values leave the
// corresponding stage out of the pipeline.
type Config struct {
	// RemoveDuplicates enables the duplicate removal stage. The stage only
	// runs when DuplicateKey is set as well.
	RemoveDuplicates bool
	// DuplicateKey is the field whose value identifies a duplicate.
	DuplicateKey string
	// RequiredFields lists the fields every record must carry with a non-nil,
	// non-empty value.
	RequiredFields []string
	// StringFields lists the fields whose string values get whitespace-cleaned
	// in place.
	StringFields []string
	// Filters keeps only the records matching every field/value pair.
	Filters map[string]any
}

// Report summarises one cleaning run.
type Report struct {
	OriginalCount     int
	FinalCount        int
	RemovedDuplicates int
	RemovedMissing    int
	RemovedInvalid    int
	TotalRemoved      int
	Records           []Record
}
