package roster

import (
	"sync"
)

// Store is an ordered, in-memory collection of student records.
//
// Iteration order is insertion order. Deleting a record closes the gap: later
// records keep their relative order.
type Store struct {
	mu      sync.Mutex
	records []*Record
	handles HandleGenerator
	closed  bool
}

// Option configures a Store.
type Option func(*Store)

// WithHandleGenerator overrides the default UUIDv7 handle generator.
func WithHandleGenerator(gen HandleGenerator) Option {
	return func(s *Store) {
		s.handles = gen
	}
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{handles: UUIDv7Generator{}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add appends a new record and returns its handle.
//
// The name is bounded with BoundName. Ids are not checked for uniqueness:
// duplicates are stored alongside each other.
//
// Returns an ErrAllocation error if no handle could be obtained, and
// ErrStoreClosed once the store has been closed. The store is unchanged
// in both cases.
func (s *Store) Add(id, age int, name string) (Handle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return "", &Error{Code: ErrCodeStoreClosed, Op: "add", ID: id}
	}

	h, err := s.handles.NewHandle()
	if err != nil {
		return "", &Error{Code: ErrCodeAllocation, Op: "add", ID: id, Err: err}
	}

	s.records = append(s.records, &Record{
		Handle: h,
		ID:     id,
		Age:    age,
		Name:   BoundName(name),
	})
	return h, nil
}

// List returns a copy of every record in insertion order.
// The result is empty (never nil) when the store holds no records.
func (s *Store) List() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Record, 0, len(s.records))
	for _, r := range s.records {
		out = append(out, *r)
	}
	return out
}

// Len returns the number of records currently held.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Get resolves a handle. The second result is false once the record has
// been released.
func (s *Store) Get(h Handle) (Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.records {
		if r.Handle == h {
			return *r, true
		}
	}
	return Record{}, false
}

// DeleteByID removes the first record (in insertion order) whose id matches
// and returns a copy of it.
//
// Returns an ErrNotFound error, leaving the store unchanged, when no record
// matches.
func (s *Store) DeleteByID(id int) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.records {
		if r.ID != id {
			continue
		}
		removed := *r
		copy(s.records[i:], s.records[i+1:])
		s.records[len(s.records)-1] = nil
		s.records = s.records[:len(s.records)-1]
		return removed, nil
	}
	return Record{}, notFound("delete", id)
}

// Clear removes every record and returns how many were removed.
// Clearing an empty store is a no-op returning 0.
func (s *Store) Clear() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.releaseAll()
}

// Close tears the store down, releasing every remaining record, and returns
// the number released. Subsequent calls return 0 and Add fails with
// ErrStoreClosed.
func (s *Store) Close() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0
	}
	s.closed = true
	n := s.releaseAll()
	s.records = nil
	return n
}

// releaseAll drops every record. Caller must hold s.mu.
func (s *Store) releaseAll() int {
	n := len(s.records)
	// Nil out entries so the backing array does not pin released records.
	for i := range s.records {
		s.records[i] = nil
	}
	s.records = s.records[:0]
	return n
}
