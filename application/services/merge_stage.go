package services

import (
	"context"
	"generate-ad-video/application/ports/outbound"
	"generate-ad-video/domain"
)

type mergeStage struct {
	logger outbound.LoggerPort
	merger outbound.MediaMergerPort
	retry  RetryPolicy
}

func NewMergeStage(logger outbound.LoggerPort, merger outbound.MediaMergerPort, retry RetryPolicy) Stage {
	return &mergeStage{
		logger: logger,
		merger: merger,
		retry:  retry,
	}
}

func (s *mergeStage) Name() domain.StageName {
	return domain.MergeStage
}

func (s *mergeStage) CheckInputs(pctx *domain.PipelineContext) error {
	if pctx.VideoRef == nil {
		return &domain.PreconditionError{Stage: s.Name(), Missing: "video artifact"}
	}
	if pctx.AudioRef == nil {
		return &domain.PreconditionError{Stage: s.Name(), Missing: "audio artifact"}
	}
	return nil
}

func (s *mergeStage) Execute(ctx context.Context, pctx *domain.PipelineContext) (*StageOutput, error) {
	var ref domain.ArtifactRef
	err := withTransientRetry(ctx, s.logger, s.retry, "merger.Merge", func() error {
		var mergeErr error
		ref, mergeErr = s.merger.Merge(ctx, *pctx.VideoRef, *pctx.AudioRef)
		return mergeErr
	})
	if err != nil {
		return nil, err
	}
	return &StageOutput{Artifact: &ref}, nil
}

func (s *mergeStage) Apply(pctx *domain.PipelineContext, out *StageOutput) {
	pctx.FinalRef = out.Artifact
}
