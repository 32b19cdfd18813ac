package measure

import (
	"time"

	"scrubkit/pkg/scrub/model"
)

type pipelineMeasure struct {
	Measure
	startTime time.Time
}

// New registers the start and end stage metrics.
func (pm *pipelineMeasure) New() error {
	pm.AddMetric(model.StartStage.Name)
	pm.AddMetric(model.EndStage.Name)
	return nil
}

// PrepareStage registers the metric for the stage.
func (pm *pipelineMeasure) PrepareStage(parentStage, stage *model.StageInfo) error {
	pm.AddMetric(stage.Name)
	return nil
}

// OnStageDone feeds the stage result into the stage metric.
func (pm *pipelineMeasure) OnStageDone(parentStage, stage *model.StageInfo, result model.StageResult) error {
	pm.AddMetric(stage.Name).AddStageResult(result.Before, result.After, result.Elapsed)
	return nil
}

// Finish stores the total pipeline duration on the end stage metric.
func (pm *pipelineMeasure) Finish() error {
	pm.AddMetric(model.EndStage.Name).SetTotalDuration(time.Since(pm.startTime))
	return nil
}

// PipelineMeasure initialises a pipeline option collecting stage metrics into
// the given measure.
func PipelineMeasure(measure Measure) model.PipelineOption {
	return &pipelineMeasure{measure, time.Now()}
}
