package services

import (
	"encoding/json"
	"fmt"
	"generate-ad-video/application/ports/outbound"
	"generate-ad-video/domain"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"regexp"
	"strings"
)

const strategySchemaJSON = `{
	"type": "object",
	"required": ["image_prompt", "video_prompt", "audio_script"],
	"properties": {
		"image_prompt": {"type": "string", "minLength": 1},
		"video_prompt": {"type": "string", "minLength": 1},
		"audio_script": {"type": "string", "minLength": 1}
	}
}`

var strategySchema = jsonschema.MustCompileString("strategy.schema.json", strategySchemaJSON)

// StrategyParser turns free-form planner text into a Strategy. The planner
// output format is not contractually guaranteed, so parsing degrades
// through four levels: strict decode of the whole input, strict decode of
// the first balanced object span, decode after quote/comma repairs, and
// labeled-field extraction. The first level that yields all three fields
// non-empty wins.
type StrategyParser interface {
	Parse(raw string) (*domain.Strategy, error)
}

type strategyParser struct {
	logger outbound.LoggerPort
}

func NewStrategyParser(logger outbound.LoggerPort) StrategyParser {
	return &strategyParser{
		logger: logger,
	}
}

func (p *strategyParser) Parse(raw string) (*domain.Strategy, error) {
	if strategy, err := decodeStrategy(raw); err == nil {
		return strategy, nil
	}

	span, found := firstObjectSpan(raw)
	if found {
		if strategy, err := decodeStrategy(span); err == nil {
			return strategy, nil
		}
		if strategy, err := decodeStrategy(repairJSON(span)); err == nil {
			p.logger.DebugWithFields("Parsed strategy after repairs", map[string]interface{}{
				"span_length": len(span),
			})
			return strategy, nil
		}
	}

	if strategy, err := decodeStrategy(repairJSON(raw)); err == nil {
		return strategy, nil
	}

	if strategy, ok := extractLabeledFields(raw); ok {
		p.logger.Warn("Strategy recovered through labeled-field extraction")
		return strategy, nil
	}

	p.logger.WarnWithFields("Planner output unusable at every parse level", map[string]interface{}{
		"raw_length": len(raw),
	})
	return nil, &domain.ParseError{
		Raw:    raw,
		Reason: "no parse level produced all three strategy fields",
	}
}

func decodeStrategy(text string) (*domain.Strategy, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("empty input")
	}

	var generic interface{}
	if err := json.Unmarshal([]byte(text), &generic); err != nil {
		return nil, err
	}
	if err := strategySchema.Validate(generic); err != nil {
		return nil, err
	}

	var strategy domain.Strategy
	if err := json.Unmarshal([]byte(text), &strategy); err != nil {
		return nil, err
	}
	if strings.TrimSpace(strategy.ImagePrompt) == "" ||
		strings.TrimSpace(strategy.VideoPrompt) == "" ||
		strings.TrimSpace(strategy.VoiceoverScript) == "" {
		return nil, fmt.Errorf("strategy field blank after decode")
	}
	return &strategy, nil
}

// firstObjectSpan returns the first balanced {...} span, skipping braces
// inside string literals.
func firstObjectSpan(raw string) (string, bool) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i, r := range raw {
		if inString {
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == '"':
				inString = false
			}
			continue
		}
		switch r {
		case '"':
			inString = true
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth > 0 {
				depth--
				if depth == 0 {
					return raw[start : i+1], true
				}
			}
		}
	}
	return "", false
}

var (
	trailingCommaRe = regexp.MustCompile(`,\s*([}\]])`)
	smartQuotes     = strings.NewReplacer(
		"“", `"`,
		"”", `"`,
		"‘", "'",
		"’", "'",
	)
)

func repairJSON(text string) string {
	repaired := smartQuotes.Replace(text)
	repaired = trailingCommaRe.ReplaceAllString(repaired, "$1")
	return repaired
}

// Values stop at quotes and newlines, so a quoted-but-empty JSON field
// never yields a phantom value.
var labelRes = map[string]*regexp.Regexp{
	"image": regexp.MustCompile(`(?i)image[_ ]?prompt["'\s:=\-\]]*([^"\n]+)`),
	"video": regexp.MustCompile(`(?i)video[_ ]?prompt["'\s:=\-\]]*([^"\n]+)`),
	"audio": regexp.MustCompile(`(?i)(?:audio[_ ]?script|voice[_ ]?over(?:[_ ]?script)?)["'\s:=\-\]]*([^"\n]+)`),
}

// extractLabeledFields is the last resort: scan for recognizable field
// labels and take the rest of the line as the value.
func extractLabeledFields(raw string) (*domain.Strategy, bool) {
	strategy := &domain.Strategy{
		ImagePrompt:     labeledValue(labelRes["image"], raw),
		VideoPrompt:     labeledValue(labelRes["video"], raw),
		VoiceoverScript: labeledValue(labelRes["audio"], raw),
	}
	if strategy.ImagePrompt == "" || strategy.VideoPrompt == "" || strategy.VoiceoverScript == "" {
		return nil, false
	}
	return strategy, true
}

func labeledValue(re *regexp.Regexp, raw string) string {
	match := re.FindStringSubmatch(raw)
	if match == nil {
		return ""
	}
	value := strings.Trim(match[1], `"', `)
	return strings.TrimSpace(value)
}
