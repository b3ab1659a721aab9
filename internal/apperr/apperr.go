// Package apperr defines the error type shared across pomod packages.
//
// Sentinel errors are declared as package-level *Error values whose Message
// may contain printf verbs. Fmt and Wrap derive new errors from a sentinel
// while keeping errors.Is(derived, sentinel) true.
package apperr

import "fmt"

// Error is an application error with an optional underlying cause.
type Error struct {
	Cause   error
	Message string

	sentinel *Error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Message
	}

	return e.Message + ": " + e.Cause.Error()
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is e or the sentinel e was derived from.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return e == t || e.root() == t
}

// Fmt returns a copy of e with the printf verbs in its message replaced by
// args.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{
		Message:  fmt.Sprintf(e.Message, args...),
		Cause:    e.Cause,
		sentinel: e.root(),
	}
}

// Wrap returns a copy of e with err as its cause.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		Message:  e.Message,
		Cause:    err,
		sentinel: e.root(),
	}
}

func (e *Error) root() *Error {
	if e.sentinel != nil {
		return e.sentinel
	}

	return e
}
