// Package apperr defines the error kinds surfaced by the tonearm CLI.
//
// Every failure the CLI reports belongs to exactly one kind. Callers match
// kinds with errors.Is; the error text itself stays free of the kind so the
// CLI can print it verbatim after its "error: " prefix.
package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrUsage           = errors.New("usage error")
	ErrUnknownScheme   = errors.New("unknown scheme")
	ErrInvalidGeometry = errors.New("invalid geometry")
)

// Error tags a human-readable message with one of the kinds above.
type Error struct {
	kind error
	msg  string
}

// New builds a kind-tagged error from a format string.
func New(kind error, format string, args ...any) *Error {
	return &Error{kind: kind, msg: fmt.Sprintf(format, args...)}
}

// Usage is shorthand for New(ErrUsage, ...).
func Usage(format string, args ...any) *Error {
	return New(ErrUsage, format, args...)
}

func (e *Error) Error() string {
	if e.msg == "" {
		return e.kind.Error()
	}
	return e.msg
}

func (e *Error) Unwrap() error { return e.kind }
