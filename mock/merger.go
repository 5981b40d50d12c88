package mockmedia

import (
	"context"
	"generate-ad-video/application/ports/outbound"
	"generate-ad-video/domain"
)

type mockMerger struct {
	store outbound.MediaStorePort
}

func NewMerger(store outbound.MediaStorePort) outbound.MediaMergerPort {
	return &mockMerger{store: store}
}

func (m *mockMerger) Merge(ctx context.Context, video domain.ArtifactRef, audio domain.ArtifactRef) (domain.ArtifactRef, error) {
	videoContent, err := m.store.Get(ctx, video)
	if err != nil {
		return domain.ArtifactRef{}, err
	}
	audioContent, err := m.store.Get(ctx, audio)
	if err != nil {
		return domain.ArtifactRef{}, err
	}

	return m.store.Put(ctx, outbound.PutMediaParams{
		Content:     append(append([]byte{}, videoContent...), audioContent...),
		Kind:        domain.MergedVideoMediaKind,
		ContentType: "video/mp4",
	})
}
