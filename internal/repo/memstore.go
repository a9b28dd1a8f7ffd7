// Package repo contains the in-memory storage layer. Each entity family
// has an interface and an implementation backed by an identifier-keyed map.
// No business logic lives here — only storage, identity lookups, and the
// narrow finders the services need.
//
// The core is designed for a single logical caller; the mutex makes each
// store safe to hand to one background task without further ceremony, but
// callers must not rely on cross-store atomicity.
package repo

import (
	"sync"

	"github.com/google/uuid"
)

// memStore is the shared map-with-lock underneath every repository.
type memStore[T any] struct {
	mu    sync.RWMutex
	items map[uuid.UUID]T
}

func newMemStore[T any]() *memStore[T] {
	return &memStore[T]{items: make(map[uuid.UUID]T)}
}

func (s *memStore[T]) get(id uuid.UUID) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.items[id]
	return v, ok
}

func (s *memStore[T]) put(id uuid.UUID, v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[id] = v
}

// replace overwrites an existing entry; it reports false when absent.
func (s *memStore[T]) replace(id uuid.UUID, v T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return false
	}
	s.items[id] = v
	return true
}

func (s *memStore[T]) delete(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return false
	}
	delete(s.items, id)
	return true
}

// all returns a snapshot slice; iteration order is not meaningful.
func (s *memStore[T]) all() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, 0, len(s.items))
	for _, v := range s.items {
		out = append(out, v)
	}
	return out
}
