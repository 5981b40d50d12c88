package services

import (
	"context"
	"generate-ad-video/application/ports/inbound"
	"generate-ad-video/application/ports/outbound"
	"generate-ad-video/domain"
)

// adPipelineOrchestrator drives the fixed strategy→image→video→audio→merge
// sequence. Strictly sequential: each stage consumes the previous stage's
// output, so nothing overlaps within one run. Independent runs get
// independent contexts and can execute concurrently.
type adPipelineOrchestrator struct {
	logger outbound.LoggerPort
	stages []Stage
	runLog outbound.RunLogStorePort
}

func NewAdPipelineOrchestrator(logger outbound.LoggerPort, runLog outbound.RunLogStorePort, stages ...Stage) inbound.AdPipelinePort {
	return &adPipelineOrchestrator{
		logger: logger,
		stages: stages,
		runLog: runLog,
	}
}

func (o *adPipelineOrchestrator) Run(ctx context.Context, params inbound.RunAdParams, onProgress inbound.ProgressFunc) (*inbound.RunAdResult, error) {
	pctx := domain.NewPipelineContext(params.RunID, params.Description)

	for _, stage := range o.stages {
		select {
		case <-ctx.Done():
			pctx.AppendRecord(stage.Name(), domain.StageFailed, "run cancelled")
			o.persistLog(pctx)
			return nil, &domain.PipelineError{Stage: stage.Name(), Kind: domain.CancelledErrorKind, Err: ctx.Err()}
		default:
		}

		o.emit(pctx, onProgress, stage.Name(), domain.StageStarted, "")

		if err := stage.CheckInputs(pctx); err != nil {
			return nil, o.fail(pctx, onProgress, stage.Name(), err)
		}

		out, err := stage.Execute(ctx, pctx)
		if err != nil && fallbackEligible(err) {
			if fallback, ok := stage.(FallbackStage); ok {
				o.logger.WarnWithFields("Stage dispatch unusable, taking direct fallback path", map[string]interface{}{
					"run_id": pctx.RunID,
					"stage":  stage.Name(),
					"cause":  err.Error(),
				})
				out, err = fallback.ExecuteFallback(ctx, pctx)
			}
		}
		if err != nil {
			return nil, o.fail(pctx, onProgress, stage.Name(), err)
		}

		stage.Apply(pctx, out)
		o.emit(pctx, onProgress, stage.Name(), domain.StageSucceeded, successMessage(out))
	}

	o.persistLog(pctx)
	o.logger.InfoWithFields("Pipeline run finished", map[string]interface{}{
		"run_id": pctx.RunID,
		"final":  pctx.FinalRef.Key,
	})

	return &inbound.RunAdResult{
		RunID:    pctx.RunID,
		Final:    *pctx.FinalRef,
		StageLog: pctx.StageLog,
	}, nil
}

// emit reports a transition to the caller; only terminal statuses become
// stage log records, so a finished run logs exactly one record per stage.
func (o *adPipelineOrchestrator) emit(pctx *domain.PipelineContext, onProgress inbound.ProgressFunc,
	stage domain.StageName, status domain.StageStatus, message string) {
	if status != domain.StageStarted {
		pctx.AppendRecord(stage, status, message)
	}
	if onProgress != nil {
		onProgress(stage, status)
	}
}

func (o *adPipelineOrchestrator) fail(pctx *domain.PipelineContext, onProgress inbound.ProgressFunc,
	stage domain.StageName, err error) error {
	o.emit(pctx, onProgress, stage, domain.StageFailed, err.Error())
	o.persistLog(pctx)
	o.logger.ErrorWithFields(err, "Pipeline run failed", map[string]interface{}{
		"run_id": pctx.RunID,
		"stage":  stage,
		"kind":   domain.KindOf(err),
	})
	return &domain.PipelineError{Stage: stage, Kind: domain.KindOf(err), Err: err}
}

// persistLog is best-effort: the run outcome does not depend on the audit
// trail being written.
func (o *adPipelineOrchestrator) persistLog(pctx *domain.PipelineContext) {
	if o.runLog == nil {
		return
	}
	if err := o.runLog.Save(context.Background(), pctx.RunID, pctx.StageLog); err != nil {
		o.logger.ErrorWithFields(err, "Failed to persist stage log", map[string]interface{}{
			"run_id": pctx.RunID,
		})
	}
}

func fallbackEligible(err error) bool {
	kind := domain.KindOf(err)
	return kind == domain.ParseErrorKind || kind == domain.DispatchErrorKind
}

func successMessage(out *StageOutput) string {
	if out != nil && out.Artifact != nil {
		return out.Artifact.Key
	}
	return "strategy ready"
}
