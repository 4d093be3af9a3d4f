package roster

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes roster errors.
type ErrorCode string

const (
	// ErrCodeNotFound indicates no record matched the requested id.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"

	// ErrCodeEmptyStore indicates a removal was attempted on an empty store.
	ErrCodeEmptyStore ErrorCode = "EMPTY_STORE"

	// ErrCodeAllocation indicates storage for a new record could not be obtained.
	ErrCodeAllocation ErrorCode = "ALLOCATION_FAILED"

	// ErrCodeStoreClosed indicates the store has already been torn down.
	ErrCodeStoreClosed ErrorCode = "STORE_CLOSED"
)

// Sentinels for errors.Is. Any *Error with the same Code matches.
var (
	ErrNotFound    = &Error{Code: ErrCodeNotFound}
	ErrEmptyStore  = &Error{Code: ErrCodeEmptyStore}
	ErrAllocation  = &Error{Code: ErrCodeAllocation}
	ErrStoreClosed = &Error{Code: ErrCodeStoreClosed}
)

// Error is returned by Store operations.
//
// No roster error is fatal: the store is left unchanged whenever an
// operation returns one.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Op is the operation that failed ("add", "delete", ...).
	Op string

	// ID is the record id involved, when relevant.
	ID int

	// Err is the underlying cause (optional).
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var msg string
	switch e.Code {
	case ErrCodeNotFound:
		msg = fmt.Sprintf("no student with id %d", e.ID)
	case ErrCodeEmptyStore:
		msg = "roster is empty"
	case ErrCodeAllocation:
		msg = "could not allocate record"
	case ErrCodeStoreClosed:
		msg = "roster is closed"
	default:
		msg = "roster error"
	}
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, msg)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error carrying the same Code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// IsNotFound reports whether err is a not-found error.
// Uses errors.Is to handle wrapped errors.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsEmptyStore reports whether err is an empty-store error.
func IsEmptyStore(err error) bool {
	return errors.Is(err, ErrEmptyStore)
}

func notFound(op string, id int) *Error {
	return &Error{Code: ErrCodeNotFound, Op: op, ID: id}
}
