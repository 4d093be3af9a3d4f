package roster

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Handle is an opaque reference to a stored record.
// It stays valid until the record is deleted, cleared or the store is closed.
type Handle string

// HandleGenerator produces handles for newly added records.
type HandleGenerator interface {
	NewHandle() (Handle, error)
}

// UUIDv7Generator generates time-sortable UUIDv7 handles.
//
// Thread-safety: UUIDv7Generator is stateless and safe for concurrent use.
type UUIDv7Generator struct{}

// NewHandle creates a new UUIDv7 handle.
func (UUIDv7Generator) NewHandle() (Handle, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return Handle(id.String()), nil
}

// SequenceGenerator returns handles "<prefix>-1", "<prefix>-2", ...
//
// It makes handles deterministic for scripted sessions and golden traces.
type SequenceGenerator struct {
	mu     sync.Mutex
	prefix string
	next   int
}

// NewSequenceGenerator creates a generator with the given prefix.
// An empty prefix defaults to "rec".
func NewSequenceGenerator(prefix string) *SequenceGenerator {
	if prefix == "" {
		prefix = "rec"
	}
	return &SequenceGenerator{prefix: prefix}
}

// NewHandle returns the next handle in sequence. It never fails.
func (g *SequenceGenerator) NewHandle() (Handle, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	return Handle(fmt.Sprintf("%s-%d", g.prefix, g.next)), nil
}
