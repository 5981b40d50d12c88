package services

import (
	"context"
	"generate-ad-video/application/ports/outbound"
	"generate-ad-video/domain"
)

type strategyStage struct {
	logger  outbound.LoggerPort
	planner outbound.StrategyPlannerPort
	direct  outbound.StrategyGeneratorPort
	parser  StrategyParser
	retry   RetryPolicy
}

func NewStrategyStage(logger outbound.LoggerPort, planner outbound.StrategyPlannerPort,
	direct outbound.StrategyGeneratorPort, parser StrategyParser, retry RetryPolicy) FallbackStage {
	return &strategyStage{
		logger:  logger,
		planner: planner,
		direct:  direct,
		parser:  parser,
		retry:   retry,
	}
}

func (s *strategyStage) Name() domain.StageName {
	return domain.StrategyStage
}

func (s *strategyStage) CheckInputs(pctx *domain.PipelineContext) error {
	if pctx.Description == "" {
		return &domain.PreconditionError{Stage: s.Name(), Missing: "ad description"}
	}
	return nil
}

func (s *strategyStage) Execute(ctx context.Context, pctx *domain.PipelineContext) (*StageOutput, error) {
	var raw string
	err := withTransientRetry(ctx, s.logger, s.retry, "planner.Plan", func() error {
		var planErr error
		raw, planErr = s.planner.Plan(ctx, pctx.Description)
		return planErr
	})
	if err != nil {
		return nil, err
	}

	strategy, err := s.parser.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &StageOutput{Strategy: strategy}, nil
}

// ExecuteFallback skips the planner and calls the model directly with the
// deterministic prompt template.
func (s *strategyStage) ExecuteFallback(ctx context.Context, pctx *domain.PipelineContext) (*StageOutput, error) {
	var raw string
	err := withTransientRetry(ctx, s.logger, s.retry, "direct.Generate", func() error {
		var genErr error
		raw, genErr = s.direct.Generate(ctx, pctx.Description)
		return genErr
	})
	if err != nil {
		return nil, err
	}

	strategy, err := s.parser.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &StageOutput{Strategy: strategy}, nil
}

func (s *strategyStage) Apply(pctx *domain.PipelineContext, out *StageOutput) {
	pctx.Strategy = out.Strategy
}
