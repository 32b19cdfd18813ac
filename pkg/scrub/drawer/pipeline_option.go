package drawer

import (
	"time"

	"github.com/pkg/errors"

	"scrubkit/pkg/scrub/measure"
	"scrubkit/pkg/scrub/model"
)

type pipelineDrawer struct {
	Drawer
	m         measure.Measure
	startTime time.Time
}

func (pd *pipelineDrawer) New() error {
	err := pd.AddStage(model.StartStage.Name)
	if err != nil {
		return errors.Wrap(err, "unable to add start stage to drawer")
	}

	return nil
}

func (pd *pipelineDrawer) PrepareStage(parentStage, stage *model.StageInfo) error {
	err := pd.AddStage(stage.Name)
	if err != nil {
		return err
	}
	err = pd.AddLink(parentStage.Name, stage.Name)
	if err != nil {
		return err
	}

	return nil
}

func (pd *pipelineDrawer) OnStageDone(parentStage, stage *model.StageInfo, result model.StageResult) error {
	return nil
}

func (pd *pipelineDrawer) Finish() error {
	if pd.m != nil {
		err := pd.SetTotalTime(model.EndStage.Name, pd.startTime)
		if err != nil {
			return errors.Wrap(err, "unable to set total time")
		}
		err = pd.AddMeasure(pd.m)
		if err != nil {
			return errors.Wrap(err, "unable to add measure")
		}
	}

	err := pd.Draw()
	if err != nil {
		return errors.Wrap(err, "unable to draw pipeline")
	}

	return nil
}

// PipelineDrawer initialises a pipeline option drawing the executed stage
// chain. When a measure is given the graph is annotated with its metrics, so
// the matching PipelineMeasure option should be listed first.
func PipelineDrawer(drawer Drawer, measure measure.Measure) model.PipelineOption {
	return &pipelineDrawer{drawer, measure, time.Now()}
}
