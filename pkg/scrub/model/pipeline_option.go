package model

// PipelineOption defines the hooks a cleaning pipeline run invokes around its
// stages.
type PipelineOption interface {
	// New initialises the pipeline option.
	New() error

	// PrepareStage runs before the stage is executed.
	PrepareStage(parentStage, stage *StageInfo) error

	// OnStageDone runs after the stage has been executed.
	OnStageDone(parentStage, stage *StageInfo, result StageResult) error

	// Finish runs after the pipeline is finished.
	Finish() error
}
