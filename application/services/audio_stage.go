package services

import (
	"context"
	"generate-ad-video/application/ports/outbound"
	"generate-ad-video/domain"
)

type audioStage struct {
	logger    outbound.LoggerPort
	generator outbound.SpeechGeneratorPort
	store     outbound.MediaStorePort
	retry     RetryPolicy
}

func NewAudioStage(logger outbound.LoggerPort, generator outbound.SpeechGeneratorPort,
	store outbound.MediaStorePort, retry RetryPolicy) Stage {
	return &audioStage{
		logger:    logger,
		generator: generator,
		store:     store,
		retry:     retry,
	}
}

func (s *audioStage) Name() domain.StageName {
	return domain.AudioStage
}

func (s *audioStage) CheckInputs(pctx *domain.PipelineContext) error {
	if pctx.Strategy == nil || pctx.Strategy.VoiceoverScript == "" {
		return &domain.PreconditionError{Stage: s.Name(), Missing: "strategy voiceover script"}
	}
	return nil
}

func (s *audioStage) Execute(ctx context.Context, pctx *domain.PipelineContext) (*StageOutput, error) {
	var content []byte
	err := withTransientRetry(ctx, s.logger, s.retry, "speechGenerator.Synthesize", func() error {
		var synthErr error
		content, synthErr = s.generator.Synthesize(ctx, pctx.Strategy.VoiceoverScript)
		return synthErr
	})
	if err != nil {
		return nil, err
	}

	var ref domain.ArtifactRef
	err = withTransientRetry(ctx, s.logger, s.retry, "mediaStore.Put", func() error {
		var putErr error
		ref, putErr = s.store.Put(ctx, outbound.PutMediaParams{
			Content:     content,
			Kind:        domain.AudioMediaKind,
			ContentType: "audio/mpeg",
		})
		return putErr
	})
	if err != nil {
		return nil, err
	}
	return &StageOutput{Artifact: &ref}, nil
}

func (s *audioStage) Apply(pctx *domain.PipelineContext, out *StageOutput) {
	pctx.AudioRef = out.Artifact
}
