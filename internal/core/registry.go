package core

import "sync"

// Registry hands out one Store per user, creating it lazily. A seed function,
// when provided, populates the store on first access; collections that must
// start empty (cases, hearings, chat) pass nil.
type Registry[T any] struct {
	mu     sync.Mutex
	stores map[string]*Store[T]
	idOf   func(T) string
	seed   func() []T
}

func NewRegistry[T any](idOf func(T) string, seed func() []T) *Registry[T] {
	return &Registry[T]{stores: make(map[string]*Store[T]), idOf: idOf, seed: seed}
}

// For returns the store owned by userID, creating and seeding it on first use.
func (r *Registry[T]) For(userID string) *Store[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.stores[userID]; ok {
		return s
	}
	s := New(r.idOf)
	if r.seed != nil {
		s.Replace(r.seed())
	}
	r.stores[userID] = s
	return s
}

// Each visits every instantiated store. New stores are not created; users who
// never touched the collection are skipped.
func (r *Registry[T]) Each(fn func(userID string, s *Store[T])) {
	r.mu.Lock()
	ids := make([]string, 0, len(r.stores))
	for id := range r.stores {
		ids = append(ids, id)
	}
	r.mu.Unlock()
	for _, id := range ids {
		r.mu.Lock()
		s, ok := r.stores[id]
		r.mu.Unlock()
		if ok {
			fn(id, s)
		}
	}
}
