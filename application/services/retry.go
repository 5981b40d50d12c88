package services

import (
	"context"
	"generate-ad-video/application/ports/outbound"
	"generate-ad-video/domain"
	"time"
)

// RetryPolicy bounds the local retries a stage spends on transient
// provider faults before the fault becomes terminal.
type RetryPolicy struct {
	Attempts int
	Backoff  time.Duration
}

func withTransientRetry(ctx context.Context, logger outbound.LoggerPort, policy RetryPolicy, op string, fn func() error) error {
	var err error
	for attempt := 1; ; attempt++ {
		err = fn()
		if err == nil || !domain.IsTransient(err) {
			return err
		}
		if attempt >= policy.Attempts {
			logger.ErrorWithFields(err, "Transient fault persisted through retries", map[string]interface{}{
				"op":       op,
				"attempts": attempt,
			})
			return err
		}

		logger.WarnWithFields("Transient fault, retrying", map[string]interface{}{
			"op":      op,
			"attempt": attempt,
		})

		timer := time.NewTimer(policy.Backoff * time.Duration(attempt))
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}
