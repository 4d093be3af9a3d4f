// Package testutil provides helpers shared by package tests.
package testutil

import (
	"testing"

	"github.com/roach88/roster/internal/roster"
)

// NewStore creates a store whose handles are "t-1", "t-2", ... so tests can
// assert on them.
func NewStore() *roster.Store {
	return roster.New(roster.WithHandleGenerator(roster.NewSequenceGenerator("t")))
}

// SeededStore creates a deterministic store and adds each record in order.
// Fails the test if any add fails.
func SeededStore(t testing.TB, records ...roster.Record) *roster.Store {
	t.Helper()
	s := NewStore()
	for _, r := range records {
		if _, err := s.Add(r.ID, r.Age, r.Name); err != nil {
			t.Fatalf("seeding record %d: %v", r.ID, err)
		}
	}
	return s
}
