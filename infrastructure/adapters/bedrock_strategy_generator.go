package adapters

import (
	"context"
	"fmt"
	"generate-ad-video/application/ports/outbound"
	"generate-ad-video/config"
	"github.com/aws/aws-sdk-go/service/bedrockruntime"
)

const directPromptTemplate = `Create a comprehensive content strategy for a video advertisement about: %s

Generate:
1. A detailed image prompt for creating a reference image (1280x720, professional, high-quality, commercial style)
2. A detailed video prompt for creating a 6-second engaging commercial-style video with camera movements
3. An audio script for voiceover (15-20 words, compelling and memorable)

Return ONLY a valid JSON object with keys: image_prompt, video_prompt, audio_script`

// bedrockStrategyGenerator is the fallback path: same model family, no
// agent framing, deterministic prompt at temperature zero.
type bedrockStrategyGenerator struct {
	logger  outbound.LoggerPort
	client  *bedrockruntime.BedrockRuntime
	bedrock *config.BedrockConfig
}

func NewBedrockStrategyGenerator(logger outbound.LoggerPort, client *bedrockruntime.BedrockRuntime, bedrock *config.BedrockConfig) outbound.StrategyGeneratorPort {
	return &bedrockStrategyGenerator{
		logger:  logger,
		client:  client,
		bedrock: bedrock,
	}
}

func (g *bedrockStrategyGenerator) Generate(ctx context.Context, description string) (string, error) {
	prompt := fmt.Sprintf(directPromptTemplate, description)
	return invokeNovaText(ctx, g.client, g.bedrock.PlannerModelID, prompt, 0)
}
