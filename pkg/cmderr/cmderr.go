// Package cmderr provides the single error type reported to the user
// by the apidoc command line tool.
//
// Every failure, whether it comes from reading a file, the network,
// decoding a response or a validation performed locally, is turned into
// an *Error before it reaches the command surface. An *Error only keeps
// the rendered description; it does not wrap its cause.
package cmderr

import (
	"errors"
	"fmt"
)

// Error is a terminal, user-facing error.
type Error struct {
	Description string
}

var _ error = (*Error)(nil)

func (e *Error) Error() string {
	return e.Description
}

// Newf creates an error from a format string.
func Newf(format string, args ...any) *Error {
	return &Error{Description: fmt.Sprintf(format, args...)}
}

// From converts err into an *Error, keeping its message verbatim.
// If err is already an *Error it is returned as-is. From returns nil for a nil error.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	if e, ok := As(err); ok {
		return e
	}
	return &Error{Description: err.Error()}
}

// Wrapf creates an error whose description is the formatted message
// followed by the message of err.
// If err is nil, Wrapf returns nil.
func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return &Error{Description: fmt.Sprintf(format, args...) + ": " + err.Error()}
}

// As reports whether err is, or wraps, an *Error.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
