package mockmedia

import (
	"context"
	"generate-ad-video/application/ports/outbound"
	"generate-ad-video/domain"
	"github.com/google/uuid"
	"sync"
	"time"
)

// mockVideoGenerator completes a job after a fixed number of status
// checks, so the poller's pending loop runs for real in mock mode.
type mockVideoGenerator struct {
	logger        outbound.LoggerPort
	store         outbound.MediaStorePort
	checksToReady int

	mu     sync.Mutex
	checks map[string]int
}

func NewVideoGenerator(logger outbound.LoggerPort, store outbound.MediaStorePort, checksToReady int) outbound.VideoGeneratorPort {
	return &mockVideoGenerator{
		logger:        logger,
		store:         store,
		checksToReady: checksToReady,
		checks:        make(map[string]int),
	}
}

func (g *mockVideoGenerator) Submit(_ context.Context, _ outbound.SubmitVideoJobParams) (domain.JobHandle, error) {
	handle := domain.JobHandle{
		ID:          "mock-job-" + uuid.NewString(),
		SubmittedAt: time.Now(),
	}

	g.mu.Lock()
	g.checks[handle.ID] = 0
	g.mu.Unlock()

	return handle, nil
}

func (g *mockVideoGenerator) CheckStatus(ctx context.Context, jobID string) (domain.JobStatus, error) {
	g.mu.Lock()
	g.checks[jobID]++
	done := g.checks[jobID] > g.checksToReady
	g.mu.Unlock()

	if !done {
		return domain.JobStatus{State: domain.JobPending}, nil
	}

	ref, err := g.store.Put(ctx, outbound.PutMediaParams{
		Content:     []byte("mock-mp4"),
		Kind:        domain.VideoMediaKind,
		ContentType: "video/mp4",
	})
	if err != nil {
		return domain.JobStatus{}, err
	}
	return domain.JobStatus{State: domain.JobSucceeded, Artifact: &ref}, nil
}
