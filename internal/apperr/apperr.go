package apperr

import (
	"errors"
	"fmt"
	"net/http"

	goerrors "github.com/go-errors/errors"
)

// Kind classifies a failure for HTTP mapping. All role/ownership ambiguity
// resolves to a denying kind, never to access.
type Kind string

const (
	KindUnauthenticated   Kind = "UNAUTHENTICATED"
	KindForbidden         Kind = "FORBIDDEN"
	KindNotFound          Kind = "NOT_FOUND"
	KindConflict          Kind = "CONFLICT"
	KindPrerequisiteUnmet Kind = "PREREQUISITE_UNMET"
	KindValidation        Kind = "VALIDATION"
	KindInternal          Kind = "INTERNAL"
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
	Stack   []byte
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// HTTPStatus maps the kind to the status surfaced to clients.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict, KindPrerequisiteUnmet, KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func New(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func Unauthenticated(message string) *Error {
	return New(KindUnauthenticated, message, nil)
}

func Forbidden(message string) *Error {
	return New(KindForbidden, message, nil)
}

func NotFound(message string) *Error {
	return New(KindNotFound, message, nil)
}

func Conflict(message string) *Error {
	return New(KindConflict, message, nil)
}

func PrerequisiteUnmet(message string) *Error {
	return New(KindPrerequisiteUnmet, message, nil)
}

func Validation(message string) *Error {
	return New(KindValidation, message, nil)
}

// Internal wraps an unexpected failure and captures the stack at the wrap
// site. Its message is logged, never sent to clients.
func Internal(message string, err error) *Error {
	var stack []byte
	if stackErr, ok := err.(*goerrors.Error); ok {
		stack = stackErr.Stack()
	} else {
		stack = goerrors.Wrap(err, 2).Stack()
	}
	return &Error{Kind: KindInternal, Message: message, Err: err, Stack: stack}
}

// From normalizes any error into an *Error, treating unknown errors as
// internal.
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Internal("unexpected error", err)
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
