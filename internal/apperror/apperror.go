// Package apperror carries the error taxonomy shared by the services: every
// failure is tagged with a Kind so the HTTP adapter can map it to a status
// code without parsing message strings, and store errors keep their cause
// wrapped for logging while the client only sees the generic message.
package apperror

import "errors"

type Kind int

const (
	KindValidation Kind = iota + 1
	KindNotFound
	KindConflict
	KindStore
)

type Error struct {
	Kind    Kind
	Message string
	Err     error // underlying cause, logged but never sent to clients
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

func Store(msg string, err error) *Error {
	return &Error{Kind: KindStore, Message: msg, Err: err}
}

// From returns the tagged error inside err, or nil when err carries no Kind.
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}
