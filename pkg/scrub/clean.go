package scrub

import (
	"time"

	"github.com/pkg/errors"

	"scrubkit/pkg/scrub/model"
)

type stage struct {
	info *model.StageInfo
	run  func(records []model.Record) []model.Record
}

// CleanDataset runs the configured cleaning stages over records in a fixed
// order: duplicate removal, required-field filtering, string-field
// normalisation, criteria filtering. Unconfigured stages are skipped.
//
// The string normalisation stage rewrites the surviving records in place,
// every other stage leaves its input untouched. The returned report counts
// the records each stage removed.
func CleanDataset(records []model.Record, cfg model.Config, opts ...model.PipelineOption) (*model.Report, error) {
	for _, opt := range opts {
		err := opt.New()
		if err != nil {
			return nil, errors.Wrap(err, "unable to apply pipeline option")
		}
	}

	startTime := time.Now()

	current := make([]model.Record, len(records))
	copy(current, records)

	report := &model.Report{OriginalCount: len(records)}
	parent := model.StartStage

	for _, st := range stagesFor(cfg) {
		for _, opt := range opts {
			err := opt.PrepareStage(parent, st.info)
			if err != nil {
				return nil, errors.Wrapf(err, "unable to prepare stage %s", st.info.Name)
			}
		}

		before := len(current)
		stageStart := time.Now()
		current = st.run(current)

		result := model.StageResult{
			Before:  before,
			After:   len(current),
			Removed: before - len(current),
			Elapsed: time.Since(stageStart),
		}

		switch st.info.Type {
		case model.DedupeStageType:
			report.RemovedDuplicates = result.Removed
		case model.RequiredStageType:
			report.RemovedMissing = result.Removed
		case model.CriteriaStageType:
			report.RemovedInvalid = result.Removed
		}

		for _, opt := range opts {
			err := opt.OnStageDone(parent, st.info, result)
			if err != nil {
				return nil, errors.Wrapf(err, "unable to finish stage %s", st.info.Name)
			}
		}

		parent = st.info
	}

	endResult := model.StageResult{
		Before:  len(current),
		After:   len(current),
		Elapsed: time.Since(startTime),
	}

	for _, opt := range opts {
		err := opt.PrepareStage(parent, model.EndStage)
		if err != nil {
			return nil, errors.Wrap(err, "unable to prepare end stage")
		}

		err = opt.OnStageDone(parent, model.EndStage, endResult)
		if err != nil {
			return nil, errors.Wrap(err, "unable to finish end stage")
		}
	}

	for _, opt := range opts {
		err := opt.Finish()
		if err != nil {
			return nil, errors.Wrap(err, "unable to finish pipeline option")
		}
	}

	report.Records = current
	report.FinalCount = len(current)
	report.TotalRemoved = report.OriginalCount - report.FinalCount

	return report, nil
}

// stagesFor resolves cfg into the ordered stage list. The order is a
// contract: the removed counts downstream depend on which stage ran first.
func stagesFor(cfg model.Config) []stage {
	stages := make([]stage, 0, 4)

	if cfg.RemoveDuplicates && cfg.DuplicateKey != "" {
		stages = append(stages, stage{
			info: &model.StageInfo{Type: model.DedupeStageType, Name: "remove duplicates"},
			run: func(records []model.Record) []model.Record {
				return RemoveDuplicatesByKey(records, cfg.DuplicateKey)
			},
		})
	}

	if len(cfg.RequiredFields) > 0 {
		stages = append(stages, stage{
			info: &model.StageInfo{Type: model.RequiredStageType, Name: "required fields"},
			run: func(records []model.Record) []model.Record {
				return RemoveMissingFields(records, cfg.RequiredFields)
			},
		})
	}

	if len(cfg.StringFields) > 0 {
		stages = append(stages, stage{
			info: &model.StageInfo{Type: model.CleanStageType, Name: "clean strings"},
			run: func(records []model.Record) []model.Record {
				return cleanStringFields(records, cfg.StringFields)
			},
		})
	}

	if len(cfg.Filters) > 0 {
		stages = append(stages, stage{
			info: &model.StageInfo{Type: model.CriteriaStageType, Name: "filter criteria"},
			run: func(records []model.Record) []model.Record {
				return FilterByCriteria(records, cfg.Filters)
			},
		})
	}

	return stages
}

// cleanStringFields whitespace-cleans the configured fields in place. Only
// string values are touched.
func cleanStringFields(records []model.Record, fields []string) []model.Record {
	for _, record := range records {
		for _, field := range fields {
			if text, ok := record[field].(string); ok {
				record[field] = CleanWhitespace(text)
			}
		}
	}

	return records
}
