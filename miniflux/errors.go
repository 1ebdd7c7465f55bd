package miniflux

import (
	"errors"
	"fmt"
	"net/http"
)

// Common errors
var (
	// ErrUnexpectedStatus is matched by every UnexpectedStatusError
	ErrUnexpectedStatus = errors.New("unexpected status code")
	// ErrVersionUnavailable indicates the /version endpoint did not answer with 200
	ErrVersionUnavailable = errors.New("miniflux version unavailable")
	// ErrInvalidVersion indicates the server version string is not semver
	ErrInvalidVersion = errors.New("invalid miniflux version")
)

// TransportError wraps a failure to obtain any response from the server.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

// Error implements the error interface
func (e *TransportError) Error() string {
	return fmt.Sprintf("miniflux request %s %s failed: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// UnexpectedStatusError is returned when a status check fails.
// Expected is 0 when any 2xx code would have been accepted.
type UnexpectedStatusError struct {
	Method   string
	Path     string
	Expected int
	Actual   int
	Body     string
}

// Error implements the error interface
func (e *UnexpectedStatusError) Error() string {
	expected := "2xx"
	if e.Expected != 0 {
		expected = fmt.Sprintf("%d", e.Expected)
	}
	return fmt.Sprintf("miniflux API error: %s %s: expected status %s, got %d", e.Method, e.Path, expected, e.Actual)
}

// Is reports ErrUnexpectedStatus as a match
func (e *UnexpectedStatusError) Is(target error) bool {
	return target == ErrUnexpectedStatus
}

// IsNotFound checks if the error indicates a not found response
func (e *UnexpectedStatusError) IsNotFound() bool {
	return e.Actual == http.StatusNotFound
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *UnexpectedStatusError) IsUnauthorized() bool {
	return e.Actual == http.StatusUnauthorized || e.Actual == http.StatusForbidden
}

// MalformedResponseError wraps a JSON decoding failure.
type MalformedResponseError struct {
	Path string
	Err  error
}

// Error implements the error interface
func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response from %s: %v", e.Path, e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}
