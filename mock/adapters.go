package mockmedia

import (
	"context"
	"fmt"
	"generate-ad-video/application/ports/outbound"
)

// The canned planner reply deliberately wraps the strategy object in
// prose, so mock runs exercise the parser's span-extraction level.
const cannedPlannerReply = `Here is the content strategy you asked for:

{
  "image_prompt": "Professional commercial photograph of %s, high quality, 1280x720, cinematic lighting",
  "video_prompt": "A 6-second commercial video about %s, smooth camera movement, engaging visuals",
  "audio_script": "Discover %s. Experience the difference today!"
}

Let me know if you need adjustments.`

type mockPlanner struct {
	logger outbound.LoggerPort
}

func NewPlanner(logger outbound.LoggerPort) outbound.StrategyPlannerPort {
	return &mockPlanner{logger: logger}
}

func (p *mockPlanner) Plan(_ context.Context, description string) (string, error) {
	p.logger.Debug("Mock planner producing canned strategy")
	return fmt.Sprintf(cannedPlannerReply, description, description, description), nil
}

type mockStrategyGenerator struct{}

func NewStrategyGenerator() outbound.StrategyGeneratorPort {
	return &mockStrategyGenerator{}
}

func (g *mockStrategyGenerator) Generate(_ context.Context, description string) (string, error) {
	return fmt.Sprintf(`{"image_prompt": "Image for %s", "video_prompt": "Video for %s", "audio_script": "Script for %s"}`,
		description, description, description), nil
}

// Minimal valid 1x1 PNG header bytes; enough for anything that only
// stores and forwards the payload.
var placeholderPNG = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a,
	0x00, 0x00, 0x00, 0x0d, 0x49, 0x48, 0x44, 0x52,
}

type mockImageGenerator struct{}

func NewImageGenerator() outbound.ImageGeneratorPort {
	return &mockImageGenerator{}
}

func (g *mockImageGenerator) Generate(_ context.Context, _ string) ([]byte, error) {
	return placeholderPNG, nil
}

type mockSpeechGenerator struct{}

func NewSpeechGenerator() outbound.SpeechGeneratorPort {
	return &mockSpeechGenerator{}
}

func (g *mockSpeechGenerator) Synthesize(_ context.Context, script string) ([]byte, error) {
	return []byte("mock-mp3:" + script), nil
}
