package services

import (
	"context"
	"generate-ad-video/domain"
)

// StageOutput is what a stage hands back to the orchestrator. Exactly one
// of the fields is set: the strategy stage produces a Strategy, every
// other stage produces an artifact reference.
type StageOutput struct {
	Artifact *domain.ArtifactRef
	Strategy *domain.Strategy
}

// Stage is one unit of the fixed five-step pipeline. Execute reads the
// pipeline context but never writes it; the orchestrator applies the
// output through Apply after a success.
type Stage interface {
	Name() domain.StageName
	CheckInputs(pctx *domain.PipelineContext) error
	Execute(ctx context.Context, pctx *domain.PipelineContext) (*StageOutput, error)
	Apply(pctx *domain.PipelineContext, out *StageOutput)
}

// FallbackStage marks a stage with a one-shot direct path that bypasses
// the planner when planner-mediated dispatch fails to parse or fails to
// act.
type FallbackStage interface {
	Stage
	ExecuteFallback(ctx context.Context, pctx *domain.PipelineContext) (*StageOutput, error)
}
