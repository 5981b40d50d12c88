package config

import (
	"fmt"
	"os"
	"strconv"
)

type CanvasConfig struct {
	ModelID  string
	Width    int
	Height   int
	CfgScale float64
}

func GetCanvasConfig() (*CanvasConfig, error) {
	modelID := os.Getenv("CANVAS_MODEL_ID")
	if modelID == "" {
		return nil, fmt.Errorf("CANVAS_MODEL_ID must be set")
	}

	width := 1280
	if raw := os.Getenv("CANVAS_WIDTH"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse CANVAS_WIDTH")
		}
		width = parsed
	}

	height := 720
	if raw := os.Getenv("CANVAS_HEIGHT"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse CANVAS_HEIGHT")
		}
		height = parsed
	}

	cfgScale := 8.0
	if raw := os.Getenv("CANVAS_CFG_SCALE"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse CANVAS_CFG_SCALE")
		}
		cfgScale = parsed
	}

	return &CanvasConfig{
		ModelID:  modelID,
		Width:    width,
		Height:   height,
		CfgScale: cfgScale,
	}, nil
}
