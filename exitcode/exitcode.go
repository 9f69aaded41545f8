// Package exitcode defines the documented exit statuses of kpx and an error
// type that carries one. Scripts depend on these values; do not renumber.
package exitcode

import (
	"errors"
	"fmt"
)

const (
	OK                = 0
	Internal          = 1 // uncaught fault, fallback status
	MissingCommand    = 2
	UnknownCommand    = 3 // also bad flags and other usage errors
	MissingDatabase   = 4
	DatabaseNotFound  = 5
	Credential        = 6 // no password source, wrong password, backend failure
	MissingAttachment = 7
	ToolNotFound      = 8
	NotFound          = 9 // entry or attachment absent
)

// Error is an error with a fixed exit status attached.
type Error struct {
	Code int
	Err  error
}

func (e *Error) Error() string { return e.Err.Error() }

func (e *Error) Unwrap() error { return e.Err }

// New wraps err with the given exit status.
func New(code int, err error) *Error {
	return &Error{Code: code, Err: err}
}

// Errorf formats a new error carrying the given exit status.
func Errorf(code int, format string, args ...any) *Error {
	return &Error{Code: code, Err: fmt.Errorf(format, args...)}
}

// Status returns the exit status for err: 0 for nil, the attached code for
// an *Error anywhere in the chain, Internal otherwise.
func Status(err error) int {
	if err == nil {
		return OK
	}
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code
	}
	return Internal
}
