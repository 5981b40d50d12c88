package services

import (
	"context"
	"errors"
	"generate-ad-video/domain"
	"testing"
	"time"
)

func testJob() domain.JobHandle {
	return domain.JobHandle{ID: "job-1", SubmittedAt: time.Now()}
}

func TestJobPoller_SucceedsAfterPendingChecks(t *testing.T) {
	poller := NewJobPoller(nopLogger{}, 2*time.Millisecond, 500*time.Millisecond, 3)

	checks := 0
	artifact, err := poller.Await(context.Background(), testJob(), func(context.Context, string) (domain.JobStatus, error) {
		checks++
		if checks < 4 {
			return domain.JobStatus{State: domain.JobPending}, nil
		}
		return domain.JobStatus{
			State:    domain.JobSucceeded,
			Artifact: &domain.ArtifactRef{Key: "output/job-1/output.mp4", Kind: domain.VideoMediaKind},
		}, nil
	})
	if err != nil {
		t.Fatal("expected success:", err)
	}
	if artifact == nil || artifact.Key != "output/job-1/output.mp4" {
		t.Errorf("unexpected artifact: %+v", artifact)
	}
	if checks != 4 {
		t.Errorf("expected 4 status checks, got %d", checks)
	}
}

func TestJobPoller_TimesOutWhenJobNeverFinishes(t *testing.T) {
	deadline := 20 * time.Millisecond
	poller := NewJobPoller(nopLogger{}, 2*time.Millisecond, deadline, 3)

	start := time.Now()
	_, err := poller.Await(context.Background(), testJob(), func(context.Context, string) (domain.JobStatus, error) {
		return domain.JobStatus{State: domain.JobPending}, nil
	})

	var timeoutErr *domain.TimeoutError
	if !errors.As(err, &timeoutErr) {
		t.Fatalf("expected TimeoutError, got %v", err)
	}
	if timeoutErr.JobID != "job-1" {
		t.Errorf("unexpected job id: %s", timeoutErr.JobID)
	}
	if elapsed := time.Since(start); elapsed < deadline {
		t.Errorf("gave up after %s, before the %s deadline", elapsed, deadline)
	}
}

func TestJobPoller_SurfacesJobFailure(t *testing.T) {
	poller := NewJobPoller(nopLogger{}, time.Millisecond, time.Second, 3)

	_, err := poller.Await(context.Background(), testJob(), func(context.Context, string) (domain.JobStatus, error) {
		return domain.JobStatus{State: domain.JobFailed, Reason: "content filter"}, nil
	})

	var failedErr *domain.JobFailedError
	if !errors.As(err, &failedErr) {
		t.Fatalf("expected JobFailedError, got %v", err)
	}
	if failedErr.Reason != "content filter" {
		t.Errorf("unexpected reason: %s", failedErr.Reason)
	}
}

func TestJobPoller_ToleratesBoundedCheckFaults(t *testing.T) {
	poller := NewJobPoller(nopLogger{}, time.Millisecond, time.Second, 3)

	checks := 0
	artifact, err := poller.Await(context.Background(), testJob(), func(context.Context, string) (domain.JobStatus, error) {
		checks++
		if checks <= 2 {
			return domain.JobStatus{}, errors.New("throttled")
		}
		return domain.JobStatus{
			State:    domain.JobSucceeded,
			Artifact: &domain.ArtifactRef{Key: "output/job-1/output.mp4", Kind: domain.VideoMediaKind},
		}, nil
	})
	if err != nil {
		t.Fatal("expected faults to be tolerated:", err)
	}
	if artifact == nil {
		t.Fatal("expected an artifact")
	}
}

func TestJobPoller_GivesUpAfterConsecutiveCheckFaults(t *testing.T) {
	poller := NewJobPoller(nopLogger{}, time.Millisecond, time.Second, 2)

	checkErr := errors.New("status endpoint down")
	checks := 0
	_, err := poller.Await(context.Background(), testJob(), func(context.Context, string) (domain.JobStatus, error) {
		checks++
		return domain.JobStatus{}, checkErr
	})
	if !errors.Is(err, checkErr) {
		t.Fatalf("expected the check error, got %v", err)
	}
	if checks != 3 {
		t.Errorf("expected 3 checks before giving up, got %d", checks)
	}
}

func TestJobPoller_FaultCounterResetsOnHealthyCheck(t *testing.T) {
	poller := NewJobPoller(nopLogger{}, time.Millisecond, time.Second, 1)

	// Faults alternate with healthy pending checks, so the consecutive
	// count never exceeds the bound.
	checks := 0
	artifact, err := poller.Await(context.Background(), testJob(), func(context.Context, string) (domain.JobStatus, error) {
		checks++
		switch {
		case checks%2 == 1 && checks < 6:
			return domain.JobStatus{}, errors.New("flaky")
		case checks < 6:
			return domain.JobStatus{State: domain.JobPending}, nil
		default:
			return domain.JobStatus{
				State:    domain.JobSucceeded,
				Artifact: &domain.ArtifactRef{Key: "output/job-1/output.mp4", Kind: domain.VideoMediaKind},
			}, nil
		}
	})
	if err != nil {
		t.Fatal("expected alternating faults to be tolerated:", err)
	}
	if artifact == nil {
		t.Fatal("expected an artifact")
	}
}

func TestJobPoller_StopsOnContextCancellation(t *testing.T) {
	poller := NewJobPoller(nopLogger{}, 50*time.Millisecond, time.Minute, 3)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(5 * time.Millisecond)
		cancel()
	}()

	_, err := poller.Await(ctx, testJob(), func(context.Context, string) (domain.JobStatus, error) {
		return domain.JobStatus{State: domain.JobPending}, nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
