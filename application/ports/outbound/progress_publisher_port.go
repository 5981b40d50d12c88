package outbound

import (
	"generate-ad-video/domain"
	"net/http"
)

// ProgressPublisherPort pushes stage transitions to whoever is watching a
// run, keyed by run id. HandlerFor exposes the run's subscription stream.
type ProgressPublisherPort interface {
	Publish(runID string, stage domain.StageName, status domain.StageStatus)
	HandlerFor(runID string) http.HandlerFunc
}
