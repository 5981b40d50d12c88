package outbound

import (
	"context"
	"generate-ad-video/domain"
)

type SubmitVideoJobParams struct {
	Prompt         string
	ReferenceImage []byte
}

// VideoGeneratorPort is the asynchronous generation capability: Submit
// starts a long-running job, CheckStatus reports on it. Waiting for the
// terminal status is the job poller's business, not the adapter's.
type VideoGeneratorPort interface {
	Submit(ctx context.Context, params SubmitVideoJobParams) (domain.JobHandle, error)
	CheckStatus(ctx context.Context, jobID string) (domain.JobStatus, error)
}
