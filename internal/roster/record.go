package roster

import (
	"fmt"
)

// MaxNameLength is the maximum number of characters kept from a name.
const MaxNameLength = 49

// Record is a single student entry.
//
// Records returned by the Store are copies; mutating one has no effect on
// the stored entry.
type Record struct {
	Handle Handle `json:"-"`
	ID     int    `json:"id"`
	Age    int    `json:"age"`
	Name   string `json:"name"`
}

// String renders the record the way the menu lists it.
func (r Record) String() string {
	return fmt.Sprintf("ID: %d | Age: %d | Name: %s", r.ID, r.Age, r.Name)
}

// BoundName keeps at most MaxNameLength characters (runes) of name. The
// result is always a prefix of name; overlong input is truncated without
// error.
func BoundName(name string) string {
	count := 0
	for i := range name {
		if count == MaxNameLength {
			return name[:i]
		}
		count++
	}
	return name
}
