package httpvalidation

import (
	"errors"
	"fmt"
	"net/http"
)

// Non-2xx response from the platform.
// The raw body is kept so callers can diagnose the failure.
type RemoteError struct {
	StatusCode int
	Status     string
	// Message from the response body's `message` or `error` field, if any.
	Message string
	Body    []byte
}

func (e *RemoteError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("received http status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("received http status %d", e.StatusCode)
}

// 404 response.
type NotFoundError struct {
	*RemoteError
}

func (e *NotFoundError) Error() string {
	return "resource not found: " + e.RemoteError.Error()
}

func (e *NotFoundError) Unwrap() error {
	return e.RemoteError
}

// 409 response.
type ConflictError struct {
	*RemoteError
}

func (e *ConflictError) Error() string {
	return "resource already exists: " + e.RemoteError.Error()
}

func (e *ConflictError) Unwrap() error {
	return e.RemoteError
}

// Login was rejected, returned no token, or a request was still unauthorized
// after the token was refreshed.
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string {
	if e.Err == nil {
		return "authentication failed"
	}
	return "authentication failed: " + e.Err.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// Network level failure. Never retried.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Returns true if err is or wraps an AuthError, or a bare 401 RemoteError.
func IsUnauthorized(err error) bool {
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return true
	}
	var remoteErr *RemoteError
	return errors.As(err, &remoteErr) && remoteErr.StatusCode == http.StatusUnauthorized
}

// Returns true if err is or wraps a NotFoundError.
func IsNotFound(err error) bool {
	var notFound *NotFoundError
	return errors.As(err, &notFound)
}

// Returns true if err is or wraps a ConflictError.
func IsConflict(err error) bool {
	var conflict *ConflictError
	return errors.As(err, &conflict)
}
