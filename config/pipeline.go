package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type PipelineConfig struct {
	TransientRetryAttempts int
	TransientRetryBackoff  time.Duration
}

func GetPipelineConfig() (*PipelineConfig, error) {
	attempts := 3
	if raw := os.Getenv("TRANSIENT_RETRY_ATTEMPTS"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse TRANSIENT_RETRY_ATTEMPTS")
		}
		attempts = parsed
	}

	backoff := 2 * time.Second
	if raw := os.Getenv("TRANSIENT_RETRY_BACKOFF_MS"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse TRANSIENT_RETRY_BACKOFF_MS")
		}
		backoff = time.Duration(parsed) * time.Millisecond
	}

	return &PipelineConfig{
		TransientRetryAttempts: attempts,
		TransientRetryBackoff:  backoff,
	}, nil
}
