package holdcloud

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/holdcloud/hcctl/lib/auth"
	"github.com/holdcloud/hcctl/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestNew(t *testing.T) {
	t.Run("creates client with defaults", func(t *testing.T) {
		c, err := New(testUsername, testPassword, "https://console.holdcloud.com/api/v1")
		require.NoError(t, err)

		assert.NotNil(t, c.httpClient)
		assert.NotNil(t, c.logger)
		assert.Equal(t, DefaultHTTPTimeout, c.httpClient.Timeout)
		assert.Equal(t, testUsername, c.Username())
		assert.Equal(t, "https://console.holdcloud.com/api/v1", c.BaseURL())
		assert.Empty(t, c.Token())
	})

	t.Run("applies options", func(t *testing.T) {
		customHTTP := &http.Client{Timeout: 10 * time.Second}
		limiter := rate.NewLimiter(rate.Inf, 1)
		logger := slog.Default()

		c, err := New(testUsername, testPassword, "http://localhost:8080",
			WithHTTPClient(customHTTP),
			WithRateLimiter(limiter),
			WithLogger(logger),
			WithUserAgent("test-agent"),
		)
		require.NoError(t, err)

		assert.Same(t, customHTTP, c.httpClient)
		assert.Same(t, limiter, c.limiter)
		assert.Same(t, logger, c.logger)
		assert.Equal(t, "test-agent", c.userAgent)
	})

	t.Run("applies timeout and tls options to the default client", func(t *testing.T) {
		c, err := New(testUsername, testPassword, "https://localhost",
			WithTimeout(5*time.Second),
			WithInsecureSkipVerify(),
		)
		require.NoError(t, err)

		assert.Equal(t, 5*time.Second, c.httpClient.Timeout)
		transport, ok := c.httpClient.Transport.(*http.Transport)
		require.True(t, ok)
		require.NotNil(t, transport.TLSClientConfig)
		assert.True(t, transport.TLSClientConfig.InsecureSkipVerify)
	})

	t.Run("rejects bad input", func(t *testing.T) {
		tests := []struct {
			name     string
			username string
			password string
			baseURL  string
		}{
			{"missing username", "", testPassword, "https://example.com"},
			{"missing password", testUsername, "", "https://example.com"},
			{"unsupported scheme", testUsername, testPassword, "ftp://example.com"},
			{"missing host", testUsername, testPassword, "https://"},
			{"unparsable url", testUsername, testPassword, "http://[::1"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := New(tt.username, tt.password, tt.baseURL)
				assert.Error(t, err)
			})
		}
	})
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("returns and caches a token", func(t *testing.T) {
		p := newFakePlatform(t)
		c := p.newClient(t)

		token, err := c.Authenticate(ctx)
		require.NoError(t, err)

		assert.NotEmpty(t, token)
		assert.Equal(t, token, c.Token())
		assert.Equal(t, 1, p.loginCount())
	})

	t.Run("sends the password digest, never the plaintext", func(t *testing.T) {
		p := newFakePlatform(t)
		c := p.newClient(t)

		_, err := c.Authenticate(ctx)
		require.NoError(t, err)

		reqs := p.recorded()
		require.Len(t, reqs, 1)
		assert.Equal(t, http.MethodPost, reqs[0].Method)
		assert.Equal(t, "/api/v1/login", reqs[0].Path)
		assert.Empty(t, reqs[0].Token)
		assert.NotContains(t, reqs[0].Body, testPassword)

		var body models.LoginRequest
		require.NoError(t, json.Unmarshal([]byte(reqs[0].Body), &body))
		assert.Equal(t, testUsername, body.Username)
		assert.Equal(t, auth.Digest(testPassword), body.Password)
	})

	t.Run("wrong password is an auth error", func(t *testing.T) {
		p := newFakePlatform(t)
		c, err := New(testUsername, "wrong", p.baseURL())
		require.NoError(t, err)

		_, err = c.Authenticate(ctx)

		var authErr *AuthError
		require.ErrorAs(t, err, &authErr)
		assert.True(t, IsUnauthorized(err))
		assert.Empty(t, c.Token())
	})

	t.Run("forbidden and bad request are auth errors", func(t *testing.T) {
		for _, status := range []int{http.StatusForbidden, http.StatusBadRequest} {
			p := newFakePlatform(t)
			p.loginStatus = status
			c := p.newClient(t)

			_, err := c.Authenticate(ctx)

			var authErr *AuthError
			require.ErrorAs(t, err, &authErr, "status %d", status)
			var remoteErr *RemoteError
			require.ErrorAs(t, err, &remoteErr)
			assert.Equal(t, status, remoteErr.StatusCode)
		}
	})

	t.Run("missing token is an auth error", func(t *testing.T) {
		p := newFakePlatform(t)
		empty := ""
		p.loginToken = &empty
		c := p.newClient(t)

		_, err := c.Authenticate(ctx)

		var authErr *AuthError
		assert.ErrorAs(t, err, &authErr)
	})

	t.Run("server errors are not auth errors", func(t *testing.T) {
		p := newFakePlatform(t)
		p.loginStatus = http.StatusInternalServerError
		c := p.newClient(t)

		_, err := c.Authenticate(ctx)

		var authErr *AuthError
		assert.False(t, errors.As(err, &authErr))
		var remoteErr *RemoteError
		require.ErrorAs(t, err, &remoteErr)
		assert.Equal(t, http.StatusInternalServerError, remoteErr.StatusCode)
		assert.Equal(t, "login rejected", remoteErr.Message)
	})

	t.Run("concurrent logins share one round trip", func(t *testing.T) {
		p := newFakePlatform(t)
		p.onLogin = sleepShort
		c := p.newClient(t)

		var wg sync.WaitGroup
		tokens := make([]string, 5)
		for i := range tokens {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				tokens[i], _ = c.Authenticate(ctx)
			}(i)
		}
		wg.Wait()

		assert.Equal(t, 1, p.loginCount())
		for _, token := range tokens {
			assert.Equal(t, "token-1", token)
		}
	})
}

func TestInvalidate(t *testing.T) {
	p := newFakePlatform(t)
	c := p.newClient(t)
	ctx := context.Background()

	_, err := c.Authenticate(ctx)
	require.NoError(t, err)

	c.Invalidate()
	assert.Empty(t, c.Token())

	_, err = c.GetState(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, p.loginCount())
	assert.Equal(t, "token-2", c.Token())
}

func TestTLSVerification(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.LoginResponse{JWEToken: "tls-token"})
	}))
	defer server.Close()

	t.Run("verifies certificates by default", func(t *testing.T) {
		c, err := New(testUsername, testPassword, server.URL)
		require.NoError(t, err)

		_, err = c.Authenticate(context.Background())

		var transportErr *TransportError
		require.ErrorAs(t, err, &transportErr)
		assert.Equal(t, http.MethodPost, transportErr.Method)
	})

	t.Run("skips verification when asked to", func(t *testing.T) {
		c, err := New(testUsername, testPassword, server.URL, WithInsecureSkipVerify())
		require.NoError(t, err)

		token, err := c.Authenticate(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "tls-token", token)
	})
}

func TestRateLimiter(t *testing.T) {
	p := newFakePlatform(t)
	// One request allowed up front, then one per hour
	c := p.newClient(t, WithRateLimiter(rate.NewLimiter(rate.Every(time.Hour), 1)))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	// The login uses up the burst, so the request itself cannot be sent in time
	_, err := c.GetState(ctx, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limiter")
	assert.Equal(t, 1, p.loginCount())
	assert.Empty(t, p.apiRequests())
}
