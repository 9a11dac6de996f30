package images

import (
	"image"
	"sync"
)

// ImageStore is a thread-safe map from a path (or derived key) to a decoded image.
// Entries live until Clear; there is no eviction.
type ImageStore struct {
	mu     sync.RWMutex
	images map[string]image.Image
}

// NewImageStore creates an empty store.
func NewImageStore() *ImageStore {
	return &ImageStore{
		images: make(map[string]image.Image),
	}
}

// Get returns the image stored under key, if any.
func (s *ImageStore) Get(key string) (image.Image, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	img, ok := s.images[key]
	return img, ok
}

// Set stores img under key, replacing any previous entry. A nil image is ignored.
func (s *ImageStore) Set(key string, img image.Image) {
	if img == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.images[key] = img
}

// Clear removes every entry.
func (s *ImageStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.images = make(map[string]image.Image)
}

// Len returns the number of entries.
func (s *ImageStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.images)
}
