package adapters

import (
	"context"
	"fmt"
	"generate-ad-video/application/ports/outbound"
	"generate-ad-video/config"
	"generate-ad-video/domain"
	"github.com/aws/aws-sdk-go/service/bedrockruntime"
	"strings"
)

const plannerPromptTemplate = `You are VideoAdCreator, an agent that plans video advertisements.

Create a content strategy for a video advertisement about: %s

Use your strategy capability to produce:
1. A detailed image prompt for a reference image (1280x720, professional, high-quality, commercial style)
2. A detailed video prompt for a 6-second engaging commercial-style video with camera movements
3. An audio script for voiceover (15-20 words, compelling and memorable)

Return a JSON object with keys: image_prompt, video_prompt, audio_script`

// bedrockPlanner is the agent-mediated planning path. The model is asked
// to delegate to its strategy capability; the reply is free-form text and
// may not honor the requested format at all.
type bedrockPlanner struct {
	logger  outbound.LoggerPort
	client  *bedrockruntime.BedrockRuntime
	bedrock *config.BedrockConfig
}

func NewBedrockPlanner(logger outbound.LoggerPort, client *bedrockruntime.BedrockRuntime, bedrock *config.BedrockConfig) outbound.StrategyPlannerPort {
	return &bedrockPlanner{
		logger:  logger,
		client:  client,
		bedrock: bedrock,
	}
}

func (p *bedrockPlanner) Plan(ctx context.Context, description string) (string, error) {
	prompt := fmt.Sprintf(plannerPromptTemplate, description)

	text, err := invokeNovaText(ctx, p.client, p.bedrock.PlannerModelID, prompt, p.bedrock.PlannerTemperature)
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(text) == "" {
		p.logger.Warn("Planner answered without producing any output")
		return "", &domain.DispatchError{Reason: "planner returned empty output"}
	}
	return text, nil
}
