package script

import "sync/atomic"

// Clock is a monotonic logical clock stamping trace events.
//
// Sequence numbers start at 1 and never repeat, so traces are ordered
// independently of wall time.
type Clock struct {
	seq atomic.Int64
}

// NewClock creates a new clock starting at 0.
func NewClock() *Clock {
	return &Clock{}
}

// Next returns the next sequence number.
func (c *Clock) Next() int64 {
	return c.seq.Add(1)
}
