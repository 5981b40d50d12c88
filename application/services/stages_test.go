package services

import (
	"context"
	"errors"
	"generate-ad-video/domain"
	"strings"
	"testing"
	"time"
)

func TestStageInputChecks(t *testing.T) {
	logger := nopLogger{}
	store := newMemStore()
	poller := NewJobPoller(logger, time.Millisecond, time.Second, 3)
	retry := testRetry()

	strategy := &domain.Strategy{
		ImagePrompt:     "a",
		VideoPrompt:     "b",
		VoiceoverScript: "c",
	}
	imageRef := &domain.ArtifactRef{Key: "images/x.png", Kind: domain.ImageMediaKind}
	videoRef := &domain.ArtifactRef{Key: "output/x/output.mp4", Kind: domain.VideoMediaKind}
	audioRef := &domain.ArtifactRef{Key: "generated_audio/x.mp3", Kind: domain.AudioMediaKind}

	cases := []struct {
		name    string
		stage   Stage
		pctx    *domain.PipelineContext
		missing string
	}{
		{
			name:    "strategy needs a description",
			stage:   NewStrategyStage(logger, &fakePlanner{}, &fakeDirectGenerator{}, NewStrategyParser(logger), retry),
			pctx:    domain.NewPipelineContext("run-1", ""),
			missing: "description",
		},
		{
			name:    "image needs a strategy",
			stage:   NewImageStage(logger, &fakeImageGenerator{}, store, retry),
			pctx:    domain.NewPipelineContext("run-1", "desc"),
			missing: "image prompt",
		},
		{
			name:    "video needs the reference image",
			stage:   NewVideoStage(logger, &fakeVideoGenerator{}, store, poller, retry),
			pctx:    &domain.PipelineContext{RunID: "run-1", Strategy: strategy},
			missing: "image",
		},
		{
			name:    "audio needs the voiceover script",
			stage:   NewAudioStage(logger, &fakeSpeechGenerator{}, store, retry),
			pctx:    &domain.PipelineContext{RunID: "run-1"},
			missing: "voiceover",
		},
		{
			name:    "merge needs the video artifact",
			stage:   NewMergeStage(logger, &fakeMerger{}, retry),
			pctx:    &domain.PipelineContext{RunID: "run-1", AudioRef: audioRef},
			missing: "video",
		},
		{
			name:    "merge needs the audio artifact",
			stage:   NewMergeStage(logger, &fakeMerger{}, retry),
			pctx:    &domain.PipelineContext{RunID: "run-1", VideoRef: videoRef},
			missing: "audio",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.stage.CheckInputs(tc.pctx)
			var preconditionErr *domain.PreconditionError
			if !errors.As(err, &preconditionErr) {
				t.Fatalf("expected PreconditionError, got %v", err)
			}
			if !strings.Contains(preconditionErr.Missing, tc.missing) {
				t.Errorf("expected missing %q, got %q", tc.missing, preconditionErr.Missing)
			}
		})
	}

	complete := &domain.PipelineContext{
		RunID:       "run-1",
		Description: "desc",
		Strategy:    strategy,
		ImageRef:    imageRef,
		VideoRef:    videoRef,
		AudioRef:    audioRef,
	}
	for _, stage := range []Stage{
		NewStrategyStage(logger, &fakePlanner{}, &fakeDirectGenerator{}, NewStrategyParser(logger), retry),
		NewImageStage(logger, &fakeImageGenerator{}, store, retry),
		NewVideoStage(logger, &fakeVideoGenerator{}, store, poller, retry),
		NewAudioStage(logger, &fakeSpeechGenerator{}, store, retry),
		NewMergeStage(logger, &fakeMerger{}, retry),
	} {
		if err := stage.CheckInputs(complete); err != nil {
			t.Errorf("stage %s: unexpected precondition failure: %v", stage.Name(), err)
		}
	}
}

func TestVideoStageTruncatesOverlongPrompt(t *testing.T) {
	logger := nopLogger{}
	store := newMemStore()
	generator := &promptCapturingVideoGenerator{}
	poller := NewJobPoller(logger, time.Millisecond, time.Second, 3)
	stage := NewVideoStage(logger, generator, store, poller, testRetry())

	ref, err := store.Put(context.Background(), putImageParams())
	if err != nil {
		t.Fatal(err)
	}
	pctx := &domain.PipelineContext{
		RunID:    "run-1",
		ImageRef: &ref,
		Strategy: &domain.Strategy{VideoPrompt: strings.Repeat("x", 2000)},
	}

	if _, err := stage.Execute(context.Background(), pctx); err != nil {
		t.Fatal("expected execute to succeed:", err)
	}
	if len(generator.prompt) != maxVideoPromptLen {
		t.Errorf("expected prompt truncated to %d characters, got %d", maxVideoPromptLen, len(generator.prompt))
	}
}
