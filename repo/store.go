package repo

import (
	"errors"
	"sync"
)

// ErrNotFound is the raw store miss. Facades translate it into their own
// missing-reference errors before it reaches a caller.
var ErrNotFound = errors.New("entity not found")

// Store is an in-memory keyed collection, one per entity type. Create
// overwrites silently: callers pre-generate fresh ids, so a collision means
// the caller meant to replace. The RWMutex guards a single store only;
// cross-store checks belong to the facade and happen outside any lock.
type Store[ID comparable, E any] struct {
	mu    sync.RWMutex
	key   func(E) ID
	items map[ID]E
}

func NewStore[ID comparable, E any](key func(E) ID) *Store[ID, E] {
	return &Store[ID, E]{key: key, items: make(map[ID]E)}
}

func (s *Store[ID, E]) Create(e E) E {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[s.key(e)] = e
	return e
}

func (s *Store[ID, E]) GetByID(id ID) (E, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.items[id]
	if !ok {
		var zero E
		return zero, ErrNotFound
	}
	return e, nil
}

// Update applies mutate to the stored entity. A miss is reported as false,
// not as an error.
func (s *Store[ID, E]) Update(id ID, mutate func(*E)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.items[id]
	if !ok {
		return false
	}
	mutate(&e)
	s.items[id] = e
	return true
}

func (s *Store[ID, E]) Delete(id ID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return false
	}
	delete(s.items, id)
	return true
}

// GetAll returns every entity in no particular order.
func (s *Store[ID, E]) GetAll() []E {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]E, 0, len(s.items))
	for _, e := range s.items {
		out = append(out, e)
	}
	return out
}

func (s *Store[ID, E]) GetByCondition(pred func(E) bool) []E {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []E
	for _, e := range s.items {
		if pred(e) {
			out = append(out, e)
		}
	}
	return out
}

func (s *Store[ID, E]) Exists(id ID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.items[id]
	return ok
}

func (s *Store[ID, E]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
