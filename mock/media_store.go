package mockmedia

import (
	"context"
	"fmt"
	"generate-ad-video/application/ports/outbound"
	"generate-ad-video/domain"
	"github.com/google/uuid"
	"sync"
)

// memoryMediaStore holds artifacts in a map. Safe for concurrent runs.
type memoryMediaStore struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func NewMediaStore() outbound.MediaStorePort {
	return &memoryMediaStore{
		objects: make(map[string][]byte),
	}
}

func (s *memoryMediaStore) Put(_ context.Context, params outbound.PutMediaParams) (domain.ArtifactRef, error) {
	key := fmt.Sprintf("mock/%s/%s", params.Kind, uuid.NewString())

	s.mu.Lock()
	s.objects[key] = params.Content
	s.mu.Unlock()

	return domain.ArtifactRef{Key: key, Kind: params.Kind}, nil
}

func (s *memoryMediaStore) Get(_ context.Context, ref domain.ArtifactRef) ([]byte, error) {
	s.mu.Lock()
	content, ok := s.objects[ref.Key]
	s.mu.Unlock()

	if !ok {
		return nil, fmt.Errorf("no object stored under %s", ref.Key)
	}
	return content, nil
}
