package drawer

import (
	"time"

	"scrubkit/pkg/scrub/measure"
)

// Drawer is an interface that defines the methods for drawing a cleaning
// pipeline.
type Drawer interface {
	// AddStage adds a stage to the pipeline drawer.
	AddStage(stageName string) error
	// AddLink adds a link between parent and child stages.
	AddLink(parentStageName, childStageName string) error
	// Draw creates a file with the pipeline graph.
	Draw() error
	// SetTotalTime sets the total time on the stage.
	SetTotalTime(stageName string, startTime time.Time) error
	// AddMeasure annotates the graph with the collected stage metrics.
	AddMeasure(measure measure.Measure) error
}
