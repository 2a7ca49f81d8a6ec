package httpw

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/holdcloud/hcctl/lib/httpvalidation"
)

// An outgoing request. The body is already encoded so the same request can be
// sent more than once.
type Request struct {
	Method string
	URL    string
	// JSON encoded body, nil for none
	Body   []byte
	Header http.Header
}

// Encode a request body as JSON.
// A nil value encodes to a nil body.
func EncodeJSON(v any) ([]byte, error) {
	if v == nil {
		return nil, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}
	return data, nil
}

// Send an HTTP request.
//
// @param ctx - Request context
//
// @param httpClient - Client used to send the request
//
// @param r - Request to send
//
// Returns the response without checking its status. Network failures are
// returned as *httpvalidation.TransportError.
func SendRequest(ctx context.Context, httpClient *http.Client, r Request) (*http.Response, error) {
	method := strings.ToUpper(r.Method)

	// Build request
	var body io.Reader
	if r.Body != nil {
		body = bytes.NewReader(r.Body)
	}
	req, err := http.NewRequestWithContext(ctx, method, r.URL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	for key, values := range r.Header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	req.Header.Set("Accept", "application/json")
	if r.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// Send request
	res, err := httpClient.Do(req)
	if err != nil {
		return nil, &httpvalidation.TransportError{Method: method, URL: r.URL, Err: err}
	}

	return res, nil
}

// Discard the rest of the response body and close it so the connection can be reused.
func Discard(res *http.Response) {
	if res == nil || res.Body == nil {
		return
	}
	_, _ = io.Copy(io.Discard, res.Body)
	res.Body.Close()
}

// Decode a successful response body into out.
// Empty bodies leave out untouched. A nil out discards the body.
func DecodeJSON(res *http.Response, out any) error {
	data, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	// String targets take JSON strings as is and anything else verbatim
	if s, ok := out.(*string); ok {
		if err := json.Unmarshal(data, s); err != nil {
			*s = string(data)
		}
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse response body: %w", err)
	}
	return nil
}
