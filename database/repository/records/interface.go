package recordsRepo

import "errors"

var (
	ErrNotFound    = errors.New("record not found")
	ErrDuplicateID = errors.New("record with this id already exists")
	ErrEmptyID     = errors.New("record id is empty")
	ErrIDChanged   = errors.New("record id cannot be changed")
)

// Record is any entity keyed by a unique id that can hand out an independent copy of itself.
type Record[T any] interface {
	GetID() string
	Clone() T
}

// RecordStore is an in-memory collection of records sharing a unique id field.
// Everything it returns is a copy; mutation only happens through Create, Update and Delete.
type RecordStore[T Record[T]] interface {
	GetAll() []T
	GetByID(id string) (T, bool)
	Create(record T) (T, error)
	Update(id string, mutate func(*T)) (T, error)
	Delete(id string) bool
	Filter(pred func(T) bool) []T
	Count(pred func(T) bool) int
}

// NewStore returns an empty store, optionally preloaded with records in the given order.
func NewStore[T Record[T]](seed ...T) *Store[T] {
	s := &Store[T]{items: make(map[string]T, len(seed))}
	for _, r := range seed {
		if _, err := s.Create(r); err != nil {
			panic(err)
		}
	}
	return s
}
