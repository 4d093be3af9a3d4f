// Package script runs scripted roster sessions.
//
// A scenario is a YAML file listing store operations (add, list, delete,
// clear) with optional expectations. Scenarios are checked against an
// embedded CUE schema, executed against a fresh roster.Store with
// deterministic handles, and produce a trace of every step.
//
// Traces serialize as canonical JSON (sorted keys, NFC strings, no HTML
// escaping) so they can be compared byte-for-byte against golden files:
//
//	go test ./internal/script -update
package script
