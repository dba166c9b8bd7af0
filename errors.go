package porkbun

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for API error classification.
// The transport wraps these so callers can handle error categories
// uniformly with errors.Is, without string-matching messages themselves.
//
//	if errors.Is(err, porkbun.ErrNotFound) { ... }
var (
	// ErrAuthentication indicates invalid or missing API credentials.
	ErrAuthentication = errors.New("authentication failed")

	// ErrAuthorization indicates valid credentials without permission
	// for the requested resource (e.g. API access not enabled for the
	// domain).
	ErrAuthorization = errors.New("not authorized")

	// ErrNotFound indicates the requested domain or record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrRateLimited indicates the API throttled the request.
	ErrRateLimited = errors.New("rate limited")

	// ErrValidation indicates invalid input rejected before any request
	// was sent. It is never produced by the transport.
	ErrValidation = errors.New("validation failed")
)

// APIError is a generic API failure that does not fit a more specific
// category. StatusCode is zero when no HTTP response was received.
type APIError struct {
	Message    string
	StatusCode int
	cause      error
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.cause
}

// RateLimitError is returned for HTTP 429 responses. RetryAfter is parsed
// from the Retry-After header and is zero when the header was absent.
type RateLimitError struct {
	Message    string
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return e.Message
}

// Is reports a match against ErrRateLimited so callers can use errors.Is
// without asserting the concrete type.
func (e *RateLimitError) Is(target error) bool {
	return target == ErrRateLimited
}

// validationError wraps ErrValidation with a field-level message.
func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
