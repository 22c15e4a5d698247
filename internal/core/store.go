// Package core holds the in-memory collections shared by the client screens
// and the pure mutation rules that advance them. Each collection has a single
// writer path (Apply/Replace) and any number of subscribed readers observing
// immutable snapshots.
package core

import "sync"

// Store is the authoritative holder of one collection. All mutations go
// through Replace or Apply, which serialize read-modify-replace sequences
// under a single mutex so near-simultaneous updates cannot be lost.
type Store[T any] struct {
	mu      sync.Mutex
	items   []T
	idOf    func(T) string
	subs    map[int]func([]T)
	nextSub int
}

// New creates an empty Store. idOf extracts the record identifier used for
// lookups and duplicate suppression.
func New[T any](idOf func(T) string) *Store[T] {
	return &Store[T]{idOf: idOf, subs: make(map[int]func([]T))}
}

// Snapshot returns a copy of the current collection in insertion order.
// The caller owns the returned slice.
func (s *Store[T]) Snapshot() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Get returns the record with the given id, or ok=false when absent.
// Absence is never an error.
func (s *Store[T]) Get(id string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.items {
		if s.idOf(it) == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// Len returns the number of records currently held.
func (s *Store[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Replace atomically swaps the stored collection. Duplicate ids are collapsed
// keeping the last occurrence, so snapshots are always duplicate-free.
func (s *Store[T]) Replace(items []T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replaceLocked(items)
	s.notifyLocked()
}

// Apply runs fn on the current collection and replaces it with the result,
// all under the store's mutex. fn must be a pure function of its input; it
// must not call back into the store.
func (s *Store[T]) Apply(fn func([]T) []T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replaceLocked(fn(s.snapshotLocked()))
	s.notifyLocked()
}

// Subscribe registers an observer invoked synchronously with the latest
// snapshot after every mutation. It fires once immediately with the current
// state. Observers run with the store lock held and must not call back into
// the store. The returned function cancels the subscription.
func (s *Store[T]) Subscribe(fn func([]T)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := s.nextSub
	s.nextSub++
	s.subs[key] = fn
	fn(s.snapshotLocked())
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, key)
	}
}

func (s *Store[T]) snapshotLocked() []T {
	cp := make([]T, len(s.items))
	copy(cp, s.items)
	return cp
}

func (s *Store[T]) replaceLocked(items []T) {
	seen := make(map[string]int, len(items))
	out := make([]T, 0, len(items))
	for _, it := range items {
		id := s.idOf(it)
		if i, dup := seen[id]; dup {
			out[i] = it // last write wins
			continue
		}
		seen[id] = len(out)
		out = append(out, it)
	}
	s.items = out
}

func (s *Store[T]) notifyLocked() {
	snap := s.snapshotLocked()
	for _, fn := range s.subs {
		fn(snap)
	}
}
