package inbound

import (
	"context"
	"generate-ad-video/domain"
)

// ProgressFunc is invoked synchronously on the orchestrator's control path
// on entry and on the terminal status of every stage. A slow callback
// delays the next stage.
type ProgressFunc func(stage domain.StageName, status domain.StageStatus)

type RunAdParams struct {
	RunID       string
	Description string
}

type RunAdResult struct {
	RunID    string
	Final    domain.ArtifactRef
	StageLog []domain.StageRecord
}

type AdPipelinePort interface {
	Run(ctx context.Context, params RunAdParams, onProgress ProgressFunc) (*RunAdResult, error)
}
