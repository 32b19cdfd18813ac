package model

import "time"

type stageType string

const (
	StartStageType    = "start"
	DedupeStageType   = "dedupe"
	RequiredStageType = "required"
	CleanStageType    = "clean"
	CriteriaStageType = "criteria"
	EndStageType      = "end"
)

// StageInfo identifies one stage of the cleaning pipeline.
type StageInfo struct {
	Type stageType
	Name string
}

// StageResult is the outcome of one executed stage.
type StageResult struct {
	Before  int
	After   int
	Removed int
	Elapsed time.Duration
}

var (
	StartStage = &StageInfo{
		Type: StartStageType,
		Name: "start",
	}

	EndStage = &StageInfo{
		Type: EndStageType,
		Name: "end",
	}
)
