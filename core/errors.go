package core

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidMode     = errors.New("invalid mode")
	ErrEmptyBuffer     = errors.New("empty buffer")
	ErrNoInterpreter   = errors.New("no interpreter configured")
	ErrPreviewRejected = errors.New("preview rejected")
)

type ErrorId int

const (
	ErrInvalidModeId ErrorId = iota
	ErrEmptyBufferId
	ErrNoInterpreterId
	ErrPreviewRejectedId
	ErrPreviewFailedId
	ErrNavigationFailedId
)

type Error struct {
	id  ErrorId
	err error
}

func NewError(id ErrorId, err error) *Error {
	return &Error{id: id, err: err}
}

func (e *Error) ID() ErrorId { return e.id }

func (e *Error) Error() string { return e.err.Error() }

func (e *Error) Unwrap() error { return e.err }

// RejectionError is returned by an Interpreter when the service answered but
// refused the text. Hint is the service's explanation, shown to the user.
type RejectionError struct {
	Status int
	Hint   string
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("%s (status %d): %s", ErrPreviewRejected, e.Status, e.Hint)
}

func (e *RejectionError) Unwrap() error { return ErrPreviewRejected }
