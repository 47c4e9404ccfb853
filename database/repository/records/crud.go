package recordsRepo

import "sync"

// Store is the map-backed RecordStore. Insertion order is kept for GetAll and Filter.
type Store[T Record[T]] struct {
	mu    sync.RWMutex
	order []string
	items map[string]T
}

// GetAll returns a snapshot copy of every record.
func (s *Store[T]) GetAll() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.items[id].Clone())
	}
	return out
}

func (s *Store[T]) GetByID(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.items[id]
	if !ok {
		var zero T
		return zero, false
	}
	return r.Clone(), true
}

// Create inserts a record. It never overwrites an existing id.
func (s *Store[T]) Create(record T) (T, error) {
	id := record.GetID()
	if id == "" {
		var zero T
		return zero, ErrEmptyID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.items[id]; exists {
		var zero T
		return zero, ErrDuplicateID
	}
	s.items[id] = record.Clone()
	s.order = append(s.order, id)
	return record.Clone(), nil
}

// Update applies mutate to a working copy and commits it, unless mutate touched the id.
func (s *Store[T]) Update(id string, mutate func(*T)) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.items[id]
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	next := current.Clone()
	mutate(&next)
	if next.GetID() != id {
		var zero T
		return zero, ErrIDChanged
	}
	s.items[id] = next
	return next.Clone(), nil
}

func (s *Store[T]) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return false
	}
	delete(s.items, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Filter returns copies of the records matching pred, in insertion order.
func (s *Store[T]) Filter(pred func(T) bool) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []T{}
	for _, id := range s.order {
		r := s.items[id].Clone()
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}

// Count returns the number of records matching pred; a nil pred counts everything.
func (s *Store[T]) Count(pred func(T) bool) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if pred == nil {
		return len(s.items)
	}
	n := 0
	for _, r := range s.items {
		if pred(r) {
			n++
		}
	}
	return n
}
