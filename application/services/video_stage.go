package services

import (
	"context"
	"generate-ad-video/application/ports/outbound"
	"generate-ad-video/domain"
)

// Nova Reel rejects prompts longer than 512 characters.
const maxVideoPromptLen = 512

type videoStage struct {
	logger    outbound.LoggerPort
	generator outbound.VideoGeneratorPort
	store     outbound.MediaStorePort
	poller    JobPoller
	retry     RetryPolicy
}

func NewVideoStage(logger outbound.LoggerPort, generator outbound.VideoGeneratorPort,
	store outbound.MediaStorePort, poller JobPoller, retry RetryPolicy) Stage {
	return &videoStage{
		logger:    logger,
		generator: generator,
		store:     store,
		poller:    poller,
		retry:     retry,
	}
}

func (s *videoStage) Name() domain.StageName {
	return domain.VideoStage
}

func (s *videoStage) CheckInputs(pctx *domain.PipelineContext) error {
	if pctx.ImageRef == nil {
		return &domain.PreconditionError{Stage: s.Name(), Missing: "reference image artifact"}
	}
	if pctx.Strategy == nil || pctx.Strategy.VideoPrompt == "" {
		return &domain.PreconditionError{Stage: s.Name(), Missing: "strategy video prompt"}
	}
	return nil
}

func (s *videoStage) Execute(ctx context.Context, pctx *domain.PipelineContext) (*StageOutput, error) {
	var referenceImage []byte
	err := withTransientRetry(ctx, s.logger, s.retry, "mediaStore.Get", func() error {
		var getErr error
		referenceImage, getErr = s.store.Get(ctx, *pctx.ImageRef)
		return getErr
	})
	if err != nil {
		return nil, err
	}

	prompt := pctx.Strategy.VideoPrompt
	if len(prompt) > maxVideoPromptLen {
		prompt = prompt[:maxVideoPromptLen]
	}

	var job domain.JobHandle
	err = withTransientRetry(ctx, s.logger, s.retry, "videoGenerator.Submit", func() error {
		var submitErr error
		job, submitErr = s.generator.Submit(ctx, outbound.SubmitVideoJobParams{
			Prompt:         prompt,
			ReferenceImage: referenceImage,
		})
		return submitErr
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoWithFields("Video job submitted, waiting for completion", map[string]interface{}{
		"run_id": pctx.RunID,
		"job_id": job.ID,
	})

	artifact, err := s.poller.Await(ctx, job, s.generator.CheckStatus)
	if err != nil {
		return nil, err
	}
	return &StageOutput{Artifact: artifact}, nil
}

func (s *videoStage) Apply(pctx *domain.PipelineContext, out *StageOutput) {
	pctx.VideoRef = out.Artifact
}
