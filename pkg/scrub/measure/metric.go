package measure

import (
	"sync"
	"time"
)

// DefaultMetric accumulates the results of every execution of one stage.
type DefaultMetric struct {
	mu           *sync.Mutex
	runs         int64
	entered      int64
	removed      int64
	stageElapsed time.Duration
	endDuration  time.Duration
}

// AddStageResult records one execution of the stage.
func (mt *DefaultMetric) AddStageResult(before, after int, elapsed time.Duration) {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	mt.runs++
	mt.entered += int64(before)
	mt.removed += int64(before - after)
	mt.stageElapsed += elapsed
}

// Runs returns how many times the stage has been executed.
func (mt *DefaultMetric) Runs() int64 {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	return mt.runs
}

// Entered returns the total number of records that entered the stage.
func (mt *DefaultMetric) Entered() int64 {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	return mt.entered
}

// Removed returns the total number of records the stage dropped.
func (mt *DefaultMetric) Removed() int64 {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	return mt.removed
}

// AVGDuration returns the average duration of one stage execution.
func (mt *DefaultMetric) AVGDuration() time.Duration {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	if mt.runs == 0 {
		return 0
	}
	return round(mt.stageElapsed / time.Duration(mt.runs))
}

// SetTotalDuration sets the total duration of the pipeline.
func (mt *DefaultMetric) SetTotalDuration(endDuration time.Duration) {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	mt.endDuration = round(endDuration)
}

// GetTotalDuration returns the total duration of the pipeline.
func (mt *DefaultMetric) GetTotalDuration() time.Duration {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	return mt.endDuration
}

func round(d time.Duration) time.Duration {
	switch {
	case d > time.Second:
		d = d.Round(10 * time.Millisecond)
	case d > time.Millisecond:
		d = d.Round(10 * time.Microsecond)
	case d > time.Microsecond:
		d = d.Round(10 * time.Nanosecond)
	}
	return d
}
