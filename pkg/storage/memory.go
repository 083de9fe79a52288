package storage

import (
	"context"
	"path"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore is an in-process Mirror for tests. MirrorURL does not fetch
// anything; it records the request and returns a synthetic durable URL.
type MemoryStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	// Fail makes every operation return this error, for exercising the
	// best-effort fallback path.
	Fail error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{objects: make(map[string][]byte)}
}

func (s *MemoryStore) Upload(ctx context.Context, folder, filename, contentType string, data []byte) (Object, error) {
	if s.Fail != nil {
		return Object{}, s.Fail
	}

	key := path.Join(folder, filename)

	s.mu.Lock()
	s.objects[key] = append([]byte(nil), data...)
	s.mu.Unlock()

	return Object{URL: "memory://" + key, Key: key}, nil
}

func (s *MemoryStore) MirrorURL(ctx context.Context, remoteURL, folder string) (Object, error) {
	if s.Fail != nil {
		return Object{}, s.Fail
	}

	key := path.Join(folder, uuid.New().String())

	s.mu.Lock()
	s.objects[key] = []byte(remoteURL)
	s.mu.Unlock()

	return Object{URL: "memory://" + key, Key: key}, nil
}

// Len reports how many objects have been stored.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.objects)
}
