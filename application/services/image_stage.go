package services

import (
	"context"
	"generate-ad-video/application/ports/outbound"
	"generate-ad-video/domain"
)

type imageStage struct {
	logger    outbound.LoggerPort
	generator outbound.ImageGeneratorPort
	store     outbound.MediaStorePort
	retry     RetryPolicy
}

func NewImageStage(logger outbound.LoggerPort, generator outbound.ImageGeneratorPort,
	store outbound.MediaStorePort, retry RetryPolicy) Stage {
	return &imageStage{
		logger:    logger,
		generator: generator,
		store:     store,
		retry:     retry,
	}
}

func (s *imageStage) Name() domain.StageName {
	return domain.ImageStage
}

func (s *imageStage) CheckInputs(pctx *domain.PipelineContext) error {
	if pctx.Strategy == nil || pctx.Strategy.ImagePrompt == "" {
		return &domain.PreconditionError{Stage: s.Name(), Missing: "strategy image prompt"}
	}
	return nil
}

func (s *imageStage) Execute(ctx context.Context, pctx *domain.PipelineContext) (*StageOutput, error) {
	var content []byte
	err := withTransientRetry(ctx, s.logger, s.retry, "imageGenerator.Generate", func() error {
		var genErr error
		content, genErr = s.generator.Generate(ctx, pctx.Strategy.ImagePrompt)
		return genErr
	})
	if err != nil {
		return nil, err
	}

	var ref domain.ArtifactRef
	err = withTransientRetry(ctx, s.logger, s.retry, "mediaStore.Put", func() error {
		var putErr error
		ref, putErr = s.store.Put(ctx, outbound.PutMediaParams{
			Content:     content,
			Kind:        domain.ImageMediaKind,
			ContentType: "image/png",
		})
		return putErr
	})
	if err != nil {
		return nil, err
	}
	return &StageOutput{Artifact: &ref}, nil
}

func (s *imageStage) Apply(pctx *domain.PipelineContext, out *StageOutput) {
	pctx.ImageRef = out.Artifact
}
