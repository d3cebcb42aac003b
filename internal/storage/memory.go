package storage

import (
	"context"
	"sync"
	"time"
)

// InMemoryStorage keeps uploaded photos in process memory, matching the
// lifetime of the record store. It backs the server when no S3 bucket is
// configured, and the service tests.
type InMemoryStorage struct {
	mu      sync.RWMutex
	objects map[string]memoryObject
}

type memoryObject struct {
	contentType string
	data        []byte
}

// NewInMemoryStorage creates an empty in-memory object store.
func NewInMemoryStorage() *InMemoryStorage {
	return &InMemoryStorage{objects: make(map[string]memoryObject)}
}

func (s *InMemoryStorage) Upload(_ context.Context, objectKey string, contentType string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[objectKey] = memoryObject{contentType: contentType, data: append([]byte(nil), data...)}
	return nil
}

// GeneratePresignedDownloadURL returns a memory:// pseudo-URL. There is no
// HTTP surface for these objects; the URL only needs to be stable and
// distinct per key.
func (s *InMemoryStorage) GeneratePresignedDownloadURL(_ context.Context, objectKey string, _ time.Duration) (string, error) {
	return "memory://" + objectKey, nil
}

func (s *InMemoryStorage) DeleteObject(_ context.Context, objectKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, objectKey)
	return nil
}

// Object returns a stored object's bytes, for tests.
func (s *InMemoryStorage) Object(objectKey string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	obj, ok := s.objects[objectKey]
	return obj.data, ok
}
