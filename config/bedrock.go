package config

import (
	"fmt"
	"os"
	"strconv"
)

type BedrockConfig struct {
	PlannerModelID     string
	PlannerTemperature float64
}

func GetBedrockConfig() (*BedrockConfig, error) {
	modelID := os.Getenv("PLANNER_MODEL_ID")
	if modelID == "" {
		return nil, fmt.Errorf("PLANNER_MODEL_ID must be set")
	}

	temperature := 0.7
	if raw := os.Getenv("PLANNER_TEMPERATURE"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse PLANNER_TEMPERATURE")
		}
		temperature = parsed
	}

	return &BedrockConfig{
		PlannerModelID:     modelID,
		PlannerTemperature: temperature,
	}, nil
}
