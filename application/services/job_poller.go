package services

import (
	"context"
	"generate-ad-video/application/ports/outbound"
	"generate-ad-video/domain"
	"time"
)

// StatusCheckFunc reports on an asynchronous job. A returned error means
// the check itself failed, not the job; the poller keeps waiting through a
// bounded number of consecutive check faults.
type StatusCheckFunc func(ctx context.Context, jobID string) (domain.JobStatus, error)

// JobPoller waits on a long-running asynchronous job until it succeeds,
// fails, or the deadline passes. Provider-agnostic: anything that can
// answer a status check can be awaited.
type JobPoller interface {
	Await(ctx context.Context, job domain.JobHandle, check StatusCheckFunc) (*domain.ArtifactRef, error)
}

type jobPoller struct {
	logger         outbound.LoggerPort
	interval       time.Duration
	deadline       time.Duration
	maxCheckFaults int
}

func NewJobPoller(logger outbound.LoggerPort, interval time.Duration, deadline time.Duration, maxCheckFaults int) JobPoller {
	return &jobPoller{
		logger:         logger,
		interval:       interval,
		deadline:       deadline,
		maxCheckFaults: maxCheckFaults,
	}
}

func (p *jobPoller) Await(ctx context.Context, job domain.JobHandle, check StatusCheckFunc) (*domain.ArtifactRef, error) {
	start := time.Now()
	faults := 0

	for {
		status, err := check(ctx, job.ID)
		if err != nil {
			faults++
			if faults > p.maxCheckFaults {
				p.logger.ErrorWithFields(err, "Status check kept failing, giving up on job", map[string]interface{}{
					"job_id": job.ID,
					"faults": faults,
				})
				return nil, err
			}
			p.logger.WarnWithFields("Status check failed, treating as pending", map[string]interface{}{
				"job_id": job.ID,
				"faults": faults,
			})
		} else {
			faults = 0
			switch status.State {
			case domain.JobSucceeded:
				return status.Artifact, nil
			case domain.JobFailed:
				return nil, &domain.JobFailedError{JobID: job.ID, Reason: status.Reason}
			}
		}

		elapsed := time.Since(start)
		if elapsed >= p.deadline {
			return nil, &domain.TimeoutError{JobID: job.ID, Elapsed: elapsed}
		}

		wait := p.interval
		if remaining := p.deadline - elapsed; remaining < wait {
			wait = remaining
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
}
