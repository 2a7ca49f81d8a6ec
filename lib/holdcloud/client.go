// Package holdcloud is a client for the HoldCloud container platform REST API.
//
// A Client logs in with a username and password, caches the session token it
// gets back and attaches it to every request. When the platform answers a
// request with 401 the token is treated as expired: the client logs in once
// more and resends the request once. Any other failure, or a second 401, is
// returned to the caller as is.
//
//	c, err := holdcloud.New("user@example.com", password, "https://console.holdcloud.com/api/v1")
//	if err != nil {
//		return err
//	}
//	list, err := c.ListServices(ctx, 89, nil)
package holdcloud

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/holdcloud/hcctl/constants"
	"github.com/holdcloud/hcctl/lib/auth"
	"github.com/holdcloud/hcctl/lib/httpw"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"
)

// DefaultHTTPTimeout is the default timeout for a single round trip.
const DefaultHTTPTimeout = 30 * time.Second

// Client holds the credentials and cached token of one platform session.
// It is safe for concurrent use.
type Client struct {
	baseURL   string
	creds     auth.Credentials
	logger    *slog.Logger
	limiter   *rate.Limiter
	userAgent string

	httpClient *http.Client
	insecure   bool
	timeout    time.Duration

	tokenMu sync.RWMutex
	token   string

	// Collapses concurrent logins into one round trip
	loginGroup singleflight.Group
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
// WithInsecureSkipVerify and WithTimeout have no effect on a custom client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithInsecureSkipVerify disables TLS certificate verification.
func WithInsecureSkipVerify() Option {
	return func(c *Client) {
		c.insecure = true
	}
}

// WithTimeout sets the timeout of a single round trip.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRateLimiter paces every round trip, logins included.
func WithRateLimiter(limiter *rate.Limiter) Option {
	return func(c *Client) {
		c.limiter = limiter
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// New creates a client for the API at baseURL.
// No request is sent until the first call.
func New(username, password, baseURL string, opts ...Option) (*Client, error) {
	creds := auth.Credentials{Username: username, Password: password}
	if err := creds.Validate(); err != nil {
		return nil, err
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid base url %q: scheme must be http or https", baseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid base url %q: missing host", baseURL)
	}

	c := &Client{
		baseURL:   baseURL,
		creds:     creds,
		logger:    slog.Default(),
		userAgent: constants.UserAgent,
		timeout:   DefaultHTTPTimeout,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		if c.insecure {
			transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec
		}
		c.httpClient = &http.Client{Timeout: c.timeout, Transport: transport}
	}

	return c, nil
}

// BaseURL returns the API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Username returns the username the client logs in with.
func (c *Client) Username() string {
	return c.creds.Username
}

// Token returns the cached session token, or an empty string if there is none.
func (c *Client) Token() string {
	c.tokenMu.RLock()
	defer c.tokenMu.RUnlock()
	return c.token
}

// Invalidate drops the cached token. The next call logs in again.
func (c *Client) Invalidate() {
	c.tokenMu.Lock()
	c.token = ""
	c.tokenMu.Unlock()
}

func (c *Client) setToken(token string) {
	c.tokenMu.Lock()
	c.token = token
	c.tokenMu.Unlock()
}

// Drops the cached token only if it is still the given one.
func (c *Client) invalidateIf(stale string) {
	c.tokenMu.Lock()
	if c.token == stale {
		c.token = ""
	}
	c.tokenMu.Unlock()
}

// Sends one request, waiting on the rate limiter first.
func (c *Client) roundTrip(ctx context.Context, method, reqURL string, body []byte, token, requestID string) (*http.Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}
	}

	header := http.Header{}
	header.Set("User-Agent", c.userAgent)
	header.Set(constants.RequestIDHeader, requestID)
	if token != "" {
		header.Set(constants.TokenHeader, token)
	}

	res, err := httpw.SendRequest(ctx, c.httpClient, httpw.Request{
		Method: method,
		URL:    reqURL,
		Body:   body,
		Header: header,
	})
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			c.logger.Debug("Request cancelled", "method", method, "url", reqURL, "request_id", requestID)
		}
		return nil, err
	}

	c.logger.Debug("Request sent",
		"method", method,
		"url", reqURL,
		"status", res.StatusCode,
		"request_id", requestID)

	return res, nil
}
