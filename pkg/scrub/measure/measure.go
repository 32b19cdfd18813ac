package measure

import "sync"

// DefaultMeasure is the default implementation of the Measure interface. It is
// safe to share across concurrent pipeline runs.
type DefaultMeasure struct {
	mu     sync.Mutex
	stages map[string]Metric
}

// NewDefaultMeasure initialises a DefaultMeasure.
func NewDefaultMeasure() *DefaultMeasure {
	return &DefaultMeasure{stages: make(map[string]Metric)}
}

// AddMetric returns the metric registered under the stage name, creating it
// first when needed.
func (m *DefaultMeasure) AddMetric(name string) Metric {
	m.mu.Lock()
	defer m.mu.Unlock()
	if mt, ok := m.stages[name]; ok {
		return mt
	}
	mt := &DefaultMetric{mu: &sync.Mutex{}}
	m.stages[name] = mt
	return mt
}

// GetMetric returns the metric registered under the stage name, nil when
// absent.
func (m *DefaultMeasure) GetMetric(name string) Metric {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stages[name]
}

// AllMetrics returns a snapshot of all the metrics keyed by stage name.
func (m *DefaultMeasure) AllMetrics() map[string]Metric {
	m.mu.Lock()
	defer m.mu.Unlock()
	all := make(map[string]Metric, len(m.stages))
	for name, mt := range m.stages {
		all[name] = mt
	}
	return all
}

var _ Measure = (*DefaultMeasure)(nil)
