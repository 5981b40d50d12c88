package outbound

import (
	"context"
	"generate-ad-video/domain"
)

type PutMediaParams struct {
	Content     []byte
	Kind        domain.MediaKind
	ContentType string
}

type MediaStorePort interface {
	Put(ctx context.Context, params PutMediaParams) (domain.ArtifactRef, error)
	Get(ctx context.Context, ref domain.ArtifactRef) ([]byte, error)
}
