package menu

import "fmt"

// ErrCodeInputParse identifies malformed integer input.
const ErrCodeInputParse = "INPUT_PARSE"

// InputError reports a line that could not be parsed where an integer was
// expected. It is recovered locally: the line is discarded and the current
// operation is cancelled.
type InputError struct {
	// Field names what was being read ("choice", "id", "age").
	Field string

	// Input is the rejected line, whitespace-trimmed.
	Input string

	// Err is the underlying strconv error.
	Err error
}

// Error implements the error interface.
func (e *InputError) Error() string {
	return fmt.Sprintf("%s: invalid %s %q: %v", ErrCodeInputParse, e.Field, e.Input, e.Err)
}

// Unwrap returns the underlying parse error.
func (e *InputError) Unwrap() error {
	return e.Err
}
