// pkg/mem/ttl_store.go
package mem

import (
	"sync"
	"time"
)

type Store[V any] interface {
	Set(key string, value V, ttl time.Duration)

	// Get returns the value for key if present and not expired.
	Get(key string) (V, bool)

	Delete(key string)
}

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

type TTLStore[V any] struct {
	mu   sync.RWMutex
	data map[string]entry[V]
	now  func() time.Time
}

func NewTTLStore[V any]() *TTLStore[V] {
	return &TTLStore[V]{
		data: make(map[string]entry[V]),
		now:  time.Now,
	}
}

func (s *TTLStore[V]) Set(key string, value V, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = entry[V]{
		value:     value,
		expiresAt: s.now().Add(ttl),
	}
}

func (s *TTLStore[V]) Get(key string) (V, bool) {
	s.mu.RLock()
	e, ok := s.data[key]
	s.mu.RUnlock()

	var zero V
	if !ok {
		return zero, false
	}
	if !s.now().Before(e.expiresAt) {
		s.mu.Lock()
		// re-check: a concurrent Set may have refreshed it
		if cur, still := s.data[key]; still && !s.now().Before(cur.expiresAt) {
			delete(s.data, key)
		}
		s.mu.Unlock()
		return zero, false
	}
	return e.value, true
}

func (s *TTLStore[V]) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
}
