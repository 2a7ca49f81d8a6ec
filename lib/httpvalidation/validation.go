package httpvalidation

import (
	"encoding/json"
	"io"
	"net/http"
)

// Cap on how much of an error body is kept.
const maxErrorBodySize = 64 * 1024

// Validate HTTP response.
//
// @param res - HTTP response
//
// Returns nil for 2xx responses. Otherwise the body is consumed and a typed
// error is returned: *AuthError for 401, *NotFoundError for 404,
// *ConflictError for 409 and *RemoteError for everything else.
func ValidateResponse(res *http.Response) error {
	if res.StatusCode >= 200 && res.StatusCode < 300 {
		return nil
	}

	remoteErr := NewRemoteError(res)

	switch res.StatusCode {
	case http.StatusUnauthorized:
		return &AuthError{Err: remoteErr}
	case http.StatusNotFound:
		return &NotFoundError{RemoteError: remoteErr}
	case http.StatusConflict:
		return &ConflictError{RemoteError: remoteErr}
	}

	return remoteErr
}

// Build a RemoteError from a response, reading (part of) its body.
func NewRemoteError(res *http.Response) *RemoteError {
	remoteErr := &RemoteError{
		StatusCode: res.StatusCode,
		Status:     res.Status,
	}

	if res.Body == nil {
		return remoteErr
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, maxErrorBodySize))
	if err != nil {
		return remoteErr
	}
	remoteErr.Body = body

	// Parse response body
	var resBody map[string]any
	if err := json.Unmarshal(body, &resBody); err != nil {
		return remoteErr
	}
	for _, key := range []string{"message", "error"} {
		if msg, ok := resBody[key].(string); ok && msg != "" {
			remoteErr.Message = msg
			break
		}
	}

	return remoteErr
}
