package measure

import "time"

// Measure is an interface that defines the methods to collect metrics for a
// cleaning pipeline.
type Measure interface {
	// AddMetric returns the metric registered under the stage name, creating
	// it first when needed.
	AddMetric(name string) Metric
	// GetMetric returns the metric registered under the stage name, nil when
	// absent.
	GetMetric(name string) Metric
	// AllMetrics returns all the metrics keyed by stage name.
	AllMetrics() map[string]Metric
}

// Metric is an interface that defines the methods to collect metrics for a
// single stage.
type Metric interface {
	// AddStageResult records one execution of the stage.
	AddStageResult(before, after int, elapsed time.Duration)
	// Runs returns how many times the stage has been executed.
	Runs() int64
	// Entered returns the total number of records that entered the stage.
	Entered() int64
	// Removed returns the total number of records the stage dropped.
	Removed() int64
	// AVGDuration returns the average duration of one stage execution.
	AVGDuration() time.Duration
	// SetTotalDuration sets the total duration of the pipeline.
	SetTotalDuration(endDuration time.Duration)
	// GetTotalDuration returns the total duration of the pipeline.
	GetTotalDuration() time.Duration
}
