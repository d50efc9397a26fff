package txstore

import (
	"context"
	"slices"
	"sync"
)

// MemoryStore is an in-process Store. Values are copied on the way in and
// out so callers never share buffers with it.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]map[string][]byte
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string]map[string][]byte)}
}

// List implements Store. Values are returned in key order.
func (s *MemoryStore) List(_ context.Context, collection string) ([][]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := s.collections[collection]
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	values := make([][]byte, 0, len(keys))
	for _, k := range keys {
		values = append(values, slices.Clone(entries[k]))
	}

	return values, nil
}

// Get implements Store.
func (s *MemoryStore) Get(_ context.Context, collection, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.collections[collection][key]
	if !ok {
		return nil, ErrNotFound
	}

	return slices.Clone(value), nil
}

// Upsert implements Store.
func (s *MemoryStore) Upsert(_ context.Context, collection, key string, value []byte, resolve ConflictResolver) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, ok := s.collections[collection]
	if !ok {
		entries = make(map[string][]byte)
		s.collections[collection] = entries
	}

	if existing, ok := entries[key]; ok {
		value = resolve(existing, value)
	}

	entries[key] = slices.Clone(value)
	return nil
}

// Delete implements Store.
func (s *MemoryStore) Delete(_ context.Context, collection, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.collections[collection], key)
	return nil
}
