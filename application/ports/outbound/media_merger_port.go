package outbound

import (
	"context"
	"generate-ad-video/domain"
)

// MediaMergerPort muxes a generated video with a voiceover track into the
// final artifact. Synchronous from the orchestrator's point of view.
type MediaMergerPort interface {
	Merge(ctx context.Context, video domain.ArtifactRef, audio domain.ArtifactRef) (domain.ArtifactRef, error)
}
