package services

import (
	"errors"
	"generate-ad-video/domain"
	"strings"
	"testing"
)

func TestStrategyParser_StrictJSON(t *testing.T) {
	parser := NewStrategyParser(nopLogger{})

	strategy, err := parser.Parse(validStrategyJSON)
	if err != nil {
		t.Fatal("expected strict decode to succeed:", err)
	}
	if !strings.Contains(strategy.ImagePrompt, "coffee shop") {
		t.Errorf("unexpected image prompt: %q", strategy.ImagePrompt)
	}
	if strategy.VideoPrompt == "" || strategy.VoiceoverScript == "" {
		t.Error("expected all three fields populated")
	}
}

func TestStrategyParser_JSONEmbeddedInProse(t *testing.T) {
	parser := NewStrategyParser(nopLogger{})
	raw := "Sure! Here is the strategy you asked for:\n\n" + validStrategyJSON + "\n\nHope this helps."

	strategy, err := parser.Parse(raw)
	if err != nil {
		t.Fatal("expected span extraction to succeed:", err)
	}
	if strategy.VoiceoverScript != "Your morning starts here. Visit us today." {
		t.Errorf("unexpected voiceover script: %q", strategy.VoiceoverScript)
	}
}

func TestStrategyParser_RepairsTrailingCommasAndSmartQuotes(t *testing.T) {
	parser := NewStrategyParser(nopLogger{})
	raw := `The strategy:
{
	“image_prompt”: “A coffee shop at dawn”,
	“video_prompt”: “Steam rising from a fresh cup”,
	“audio_script”: “Wake up with us”,
}`

	strategy, err := parser.Parse(raw)
	if err != nil {
		t.Fatal("expected repaired decode to succeed:", err)
	}
	if strategy.ImagePrompt != "A coffee shop at dawn" {
		t.Errorf("unexpected image prompt: %q", strategy.ImagePrompt)
	}
}

func TestStrategyParser_LabeledFieldExtraction(t *testing.T) {
	parser := NewStrategyParser(nopLogger{})
	raw := `I could not produce JSON, but here is what I came up with.

IMAGE_PROMPT: A barista pouring latte art, shot on 50mm
VIDEO_PROMPT: Slow dolly through a sunlit cafe
AUDIO_SCRIPT: Great coffee, made for you`

	strategy, err := parser.Parse(raw)
	if err != nil {
		t.Fatal("expected labeled extraction to succeed:", err)
	}
	if strategy.VideoPrompt != "Slow dolly through a sunlit cafe" {
		t.Errorf("unexpected video prompt: %q", strategy.VideoPrompt)
	}
}

func TestStrategyParser_MissingFieldFailsEveryLevel(t *testing.T) {
	parser := NewStrategyParser(nopLogger{})
	raw := `{
	"image_prompt": "A coffee shop",
	"audio_script": "Visit us"
}`

	_, err := parser.Parse(raw)
	var parseErr *domain.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if parseErr.Raw != raw {
		t.Error("expected raw planner text preserved on the error")
	}
}

func TestStrategyParser_BlankFieldIsNotAStrategy(t *testing.T) {
	parser := NewStrategyParser(nopLogger{})
	raw := `{"image_prompt": "x", "video_prompt": "", "audio_script": "y"}`

	_, err := parser.Parse(raw)
	var parseErr *domain.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError for blank field, got %v", err)
	}
}

func TestStrategyParser_UnusableProse(t *testing.T) {
	parser := NewStrategyParser(nopLogger{})
	raw := "I'm sorry, I cannot help with that request."

	_, err := parser.Parse(raw)
	var parseErr *domain.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if parseErr.Raw != raw {
		t.Error("expected raw planner text preserved on the error")
	}
}
