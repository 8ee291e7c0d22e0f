package profile

import (
	"errors"
	"fmt"
)

// Kind tags an Error with the failure it represents.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindConflict
	KindNotFound
	KindEmptyInput
	KindBackend
	KindSpawn
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "ValidationError"
	case KindConflict:
		return "ConflictError"
	case KindNotFound:
		return "NotFoundError"
	case KindEmptyInput:
		return "EmptyInputError"
	case KindBackend:
		return "BackendError"
	case KindSpawn:
		return "SpawnError"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is the single error type returned by this package.
type Error struct {
	Kind    Kind
	Message string

	// Err is the underlying cause, usually from the backend.
	Err error

	debug map[string]any
}

// NewError returns an Error of kind with message msg.
func NewError(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

func newError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func wrapError(kind Kind, err error, format string, args ...any) *Error {
	e := newError(kind, format, args...)
	e.Err = err
	return e
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// WithDebug attaches a structured debug value and returns e.
func (e *Error) WithDebug(key string, value any) *Error {
	if e.debug == nil {
		e.debug = make(map[string]any)
	}
	e.debug[key] = value
	return e
}

// Debug returns the attached debug values, or nil.
func (e *Error) Debug() map[string]any {
	return e.debug
}

// KindOf reports the Kind of the first *Error in err's chain, or zero.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// IsKind reports whether err carries kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
