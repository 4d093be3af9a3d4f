// Package roster provides the in-memory student roster.
//
// A Store holds an ordered sequence of student records and exposes four
// operations:
//   - Add: append a record (duplicate ids are accepted)
//   - List: copy out all records in insertion order
//   - DeleteByID: remove the first record with a given id
//   - Clear: remove every record and report how many were removed
//
// # Ownership
//
// The Store exclusively owns its records. Callers receive copies (Record
// values) and opaque Handles, never references into the store. A record is
// released exactly once: by DeleteByID, by Clear, or by Close when the store
// is torn down. A Handle stops resolving as soon as its record is released.
//
// # Names
//
// Names are bounded to MaxNameLength characters. Content is stored as given;
// longer names are truncated silently to their prefix.
//
// # Concurrency
//
// All operations take one mutex over the whole sequence. The interactive
// menu drives the store from a single goroutine, so the lock is never
// contended in practice.
package roster
