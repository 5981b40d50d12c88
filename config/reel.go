package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type ReelConfig struct {
	ModelID         string
	DurationSeconds int
	FPS             int
	Dimension       string
	PollInterval    time.Duration
	PollDeadline    time.Duration
	MaxCheckFaults  int
}

func GetReelConfig() (*ReelConfig, error) {
	modelID := os.Getenv("REEL_MODEL_ID")
	if modelID == "" {
		return nil, fmt.Errorf("REEL_MODEL_ID must be set")
	}

	durationSeconds := 6
	if raw := os.Getenv("REEL_DURATION_SECONDS"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse REEL_DURATION_SECONDS")
		}
		durationSeconds = parsed
	}

	fps := 24
	if raw := os.Getenv("REEL_FPS"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse REEL_FPS")
		}
		fps = parsed
	}

	dimension := os.Getenv("REEL_DIMENSION")
	if dimension == "" {
		dimension = "1280x720"
	}

	pollInterval := 15 * time.Second
	if raw := os.Getenv("REEL_POLL_INTERVAL_SECONDS"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse REEL_POLL_INTERVAL_SECONDS")
		}
		pollInterval = time.Duration(parsed) * time.Second
	}

	pollDeadline := 10 * time.Minute
	if raw := os.Getenv("REEL_POLL_DEADLINE_SECONDS"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse REEL_POLL_DEADLINE_SECONDS")
		}
		pollDeadline = time.Duration(parsed) * time.Second
	}

	maxCheckFaults := 3
	if raw := os.Getenv("REEL_MAX_CHECK_FAULTS"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse REEL_MAX_CHECK_FAULTS")
		}
		maxCheckFaults = parsed
	}

	return &ReelConfig{
		ModelID:         modelID,
		DurationSeconds: durationSeconds,
		FPS:             fps,
		Dimension:       dimension,
		PollInterval:    pollInterval,
		PollDeadline:    pollDeadline,
		MaxCheckFaults:  maxCheckFaults,
	}, nil
}
