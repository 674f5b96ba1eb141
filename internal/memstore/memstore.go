package memstore

import "sync"

// Store is an in-memory, process-lifetime collection used by every domain.
// Identifiers come from a dedicated sequence owned by the store, not from the
// collection length, so removals can never cause identifier reuse. All
// mutations are serialized with a mutex.
type Store[T any] struct {
	mu      sync.RWMutex
	seq     int
	records []T
	id      func(*T) *int
}

// New builds a store; id must return a pointer to the record's identifier
// field so Insert can assign it.
func New[T any](id func(*T) *int) *Store[T] {
	return &Store[T]{id: id}
}

// Insert assigns the next identifier (1-based, +1 per insert) and appends
// the record. The stored record is returned.
func (s *Store[T]) Insert(rec T) T {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	*s.id(&rec) = s.seq
	s.records = append(s.records, rec)
	return rec
}

func (s *Store[T]) FindByID(id int) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.records {
		if *s.id(&s.records[i]) == id {
			return s.records[i], true
		}
	}
	var zero T
	return zero, false
}

// FindAll returns records in insertion order. A nil predicate matches
// everything. The result is always non-nil.
func (s *Store[T]) FindAll(pred func(T) bool) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, 0, len(s.records))
	for _, rec := range s.records {
		if pred == nil || pred(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// Update applies patch to the record with the given identifier in place.
// The second result is false when no record matches.
func (s *Store[T]) Update(id int, patch func(*T)) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if *s.id(&s.records[i]) == id {
			patch(&s.records[i])
			return s.records[i], true
		}
	}
	var zero T
	return zero, false
}

func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
