package outbound

import (
	"context"
	"generate-ad-video/domain"
)

// RunLogStorePort persists the ordered stage log of a finished run for
// display or audit.
type RunLogStorePort interface {
	Save(ctx context.Context, runID string, records []domain.StageRecord) error
}
