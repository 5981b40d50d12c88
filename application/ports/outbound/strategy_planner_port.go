package outbound

import "context"

// StrategyPlannerPort is the agent-mediated planning path. The returned
// text is free-form and may not contain a usable strategy; the caller is
// expected to run it through the strategy parser.
type StrategyPlannerPort interface {
	Plan(ctx context.Context, description string) (string, error)
}

// StrategyGeneratorPort is the direct fallback path: it bypasses the
// planner and calls the underlying model with a deterministic prompt
// template.
type StrategyGeneratorPort interface {
	Generate(ctx context.Context, description string) (string, error)
}
