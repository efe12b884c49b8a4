package errs

import (
	"github.com/pkg/errors"
)

// Kind classifies an HTTPError independently of its message.
type Kind string

const (
	KindInvalidID        Kind = "invalid_id"
	KindNotFound         Kind = "not_found"
	KindValidationFailed Kind = "validation_failed"
	KindDuplicateEmail   Kind = "duplicate_email"
	KindMalformedBody    Kind = "malformed_body"
	KindRouteNotFound    Kind = "route_not_found"
	KindRateLimited      Kind = "rate_limited"
	KindInternal         Kind = "internal"
)

// HTTPError is the main custom error type for API responses.
//
// It is serialized directly to JSON; only Title and Message reach the client:
//
//	{ "error": "Not found", "message": "User with ID 7 not found" }
type HTTPError struct {
	Kind    Kind   `json:"-"`
	Status  int    `json:"-"`
	Title   string `json:"error"`
	Message string `json:"message"`

	// cause is the underlying failure for internal errors. It carries
	// the stack trace that gets logged.
	cause error
}

// Error makes *HTTPError satisfy the built-in `error` interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// Unwrap exposes the underlying cause, if any.
func (e *HTTPError) Unwrap() error {
	return e.cause
}

// Is reports whether target is an *HTTPError of the same Kind.
// A target with an empty Kind matches any *HTTPError.
func (e *HTTPError) Is(target error) bool {
	t, ok := target.(*HTTPError)
	if !ok {
		return false
	}
	return t.Kind == "" || t.Kind == e.Kind
}

// Cause returns the underlying error of an internal failure, or nil.
func (e *HTTPError) Cause() error {
	return e.cause
}

// IsKind reports whether err is an *HTTPError of the given kind.
func IsKind(err error, kind Kind) bool {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Kind == kind
	}
	return false
}
