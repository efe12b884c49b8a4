package errs

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// Titles used in the "error" field of response bodies.
const (
	TitleInvalidID        = "Invalid ID"
	TitleNotFound         = "Not found"
	TitleValidationFailed = "Validation failed"
	TitleInvalidJSON      = "Invalid JSON"
	TitleTooManyRequests  = "Too many requests"
	TitleInternal         = "Internal server error"
)

// NewInvalidIDError creates the 400 returned when a path id is not a number.
func NewInvalidIDError() *HTTPError {
	return &HTTPError{
		Kind:    KindInvalidID,
		Status:  http.StatusBadRequest,
		Title:   TitleInvalidID,
		Message: "User ID must be a valid number",
	}
}

// NewUserNotFoundError creates the 404 returned when no user has the given id.
func NewUserNotFoundError(id int) *HTTPError {
	return &HTTPError{
		Kind:    KindNotFound,
		Status:  http.StatusNotFound,
		Title:   TitleNotFound,
		Message: fmt.Sprintf("User with ID %d not found", id),
	}
}

// NewRouteNotFoundError creates the 404 returned for requests no route matches.
//
// uri is the original request URI, query string included.
func NewRouteNotFoundError(method, uri string) *HTTPError {
	return &HTTPError{
		Kind:    KindRouteNotFound,
		Status:  http.StatusNotFound,
		Title:   TitleNotFound,
		Message: fmt.Sprintf("Cannot %s %s", method, uri),
	}
}

// NewValidationError creates a 400 for a payload that failed a field rule.
func NewValidationError(message string) *HTTPError {
	return &HTTPError{
		Kind:    KindValidationFailed,
		Status:  http.StatusBadRequest,
		Title:   TitleValidationFailed,
		Message: message,
	}
}

// NewDuplicateEmailError creates the 400 returned when another user already
// holds the email. It shares the "Validation failed" title with field errors.
func NewDuplicateEmailError() *HTTPError {
	return &HTTPError{
		Kind:    KindDuplicateEmail,
		Status:  http.StatusBadRequest,
		Title:   TitleValidationFailed,
		Message: "User with this email already exists",
	}
}

// NewMalformedBodyError creates the 400 returned when a JSON body cannot be parsed.
func NewMalformedBodyError(cause error) *HTTPError {
	return &HTTPError{
		Kind:    KindMalformedBody,
		Status:  http.StatusBadRequest,
		Title:   TitleInvalidJSON,
		Message: "Request body contains malformed JSON",
		cause:   cause,
	}
}

// NewTooManyRequestsError creates the 429 returned by the rate limiter.
func NewTooManyRequestsError() *HTTPError {
	return &HTTPError{
		Kind:    KindRateLimited,
		Status:  http.StatusTooManyRequests,
		Title:   TitleTooManyRequests,
		Message: "Rate limit exceeded, try again later",
	}
}

// NewInternalServerError creates a 500 from an unexpected failure.
//
// The client sees the failure description; the cause keeps a stack trace
// (attached here when it has none) for the server log.
func NewInternalServerError(cause error) *HTTPError {
	if cause == nil {
		cause = errors.New(http.StatusText(http.StatusInternalServerError))
	}
	if _, ok := cause.(interface{ StackTrace() errors.StackTrace }); !ok {
		cause = errors.WithStack(cause)
	}

	return &HTTPError{
		Kind:    KindInternal,
		Status:  http.StatusInternalServerError,
		Title:   TitleInternal,
		Message: cause.Error(),
		cause:   cause,
	}
}

// NewHTTPError creates an error for an arbitrary status, titled with the
// standard status text. Used for framework errors that have no dedicated kind.
func NewHTTPError(status int, message string) *HTTPError {
	kind := Kind(fmt.Sprintf("http_%d", status))
	if status >= http.StatusInternalServerError {
		kind = KindInternal
	}
	return &HTTPError{
		Kind:    kind,
		Status:  status,
		Title:   http.StatusText(status),
		Message: message,
	}
}
