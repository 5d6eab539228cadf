package monday

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrInvalidParameters reports that required variables for the requested
// operation are missing. Detected before any network call.
var ErrInvalidParameters = errors.New("invalid parameters")

// ErrNotFound reports that a get-by-id query returned zero items.
var ErrNotFound = errors.New("item not found")

// APIError represents a failed API call: a non-2xx HTTP response or a
// GraphQL errors array in an otherwise successful response. Callers should
// prefer the predicate functions (IsNotFound, IsUnauthorized, etc.) to
// inspect errors rather than asserting on this type directly.
type APIError struct {
	statusCode int
	code       string
	message    string
}

func (e *APIError) Error() string {
	if e.code != "" {
		return fmt.Sprintf("HTTP %d: [%s] %s", e.statusCode, e.code, e.message)
	}
	return fmt.Sprintf("HTTP %d: %s", e.statusCode, e.message)
}

func newAPIError(statusCode int, code, message string) *APIError {
	return &APIError{statusCode: statusCode, code: code, message: message}
}

// StatusCode returns the HTTP status code from the response.
func (e *APIError) StatusCode() int { return e.statusCode }

// Code returns the GraphQL error code (e.g. "ComplexityException"), if any.
func (e *APIError) Code() string { return e.code }

// Message returns the human-readable error message.
func (e *APIError) Message() string { return e.message }

// IsInvalidParameters reports whether err stems from missing operation
// variables.
func IsInvalidParameters(err error) bool { return errors.Is(err, ErrInvalidParameters) }

// IsNotFound reports whether err is a missing-item error, either the
// ErrNotFound sentinel or an API error with HTTP 404 status.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || HasStatusCode(err, http.StatusNotFound)
}

// IsUnauthorized reports whether err is an API error with HTTP 401 status.
func IsUnauthorized(err error) bool { return HasStatusCode(err, http.StatusUnauthorized) }

// HasStatusCode reports whether err is an API error whose HTTP status code matches.
func HasStatusCode(err error, code int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.statusCode == code
}

// HasErrorCode reports whether err is an API error whose GraphQL error code matches.
func HasErrorCode(err error, code string) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.code == code
}
