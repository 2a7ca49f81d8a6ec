package holdcloud

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/holdcloud/hcctl/constants"
	"github.com/holdcloud/hcctl/lib/api"
	"github.com/holdcloud/hcctl/lib/auth"
	"github.com/holdcloud/hcctl/lib/httpvalidation"
	"github.com/holdcloud/hcctl/lib/httpw"
	"github.com/holdcloud/hcctl/models"
	"github.com/lucsky/cuid"
)

// Authenticate logs in and caches the returned token.
//
// Rejected credentials and login responses without a token are returned as
// *AuthError. If another call is already logging in, its result is shared.
func (c *Client) Authenticate(ctx context.Context) (string, error) {
	return c.sharedLogin(ctx)
}

// Joins the in-flight login, or starts one. The login itself outlives the
// caller that started it; each caller only stops waiting on its own ctx.
func (c *Client) sharedLogin(ctx context.Context) (string, error) {
	ch := c.loginGroup.DoChan("login", func() (interface{}, error) {
		return c.login(context.WithoutCancel(ctx))
	})

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("waiting for login: %w", ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		if res.Shared {
			c.logger.Debug("Shared in-flight login", "username", c.creds.Username)
		}
		return res.Val.(string), nil
	}
}

// Performs the login round trip.
func (c *Client) login(ctx context.Context) (string, error) {
	req := c.creds.LoginRequest()
	if err := validate.Struct(req); err != nil {
		return "", fmt.Errorf("invalid login request: %w", err)
	}

	body, err := httpw.EncodeJSON(req)
	if err != nil {
		return "", err
	}

	loginURL := api.BuildURL(c.baseURL, constants.PathLogin)
	res, err := c.roundTrip(ctx, http.MethodPost, loginURL, body, "", cuid.New())
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if err := httpvalidation.ValidateResponse(res); err != nil {
		var authErr *AuthError
		if errors.As(err, &authErr) {
			return "", err
		}
		if res.StatusCode == http.StatusBadRequest || res.StatusCode == http.StatusForbidden {
			return "", &AuthError{Err: err}
		}
		return "", err
	}

	var loginRes models.LoginResponse
	if err := httpw.DecodeJSON(res, &loginRes); err != nil {
		return "", fmt.Errorf("failed to parse login response: %w", err)
	}
	if loginRes.JWEToken == "" {
		return "", &AuthError{Err: errors.New("no token in login response")}
	}

	c.setToken(loginRes.JWEToken)
	c.logger.Debug("Logged in",
		"username", c.creds.Username,
		"token", auth.Fingerprint(loginRes.JWEToken))

	return loginRes.JWEToken, nil
}

// Returns the cached token, logging in first if there is none.
func (c *Client) ensureToken(ctx context.Context) (string, error) {
	if token := c.Token(); token != "" {
		return token, nil
	}
	return c.sharedLogin(ctx)
}

// Replaces a token the platform rejected.
// If another call already replaced it, that token is used without logging in.
func (c *Client) refreshToken(ctx context.Context, stale string) (string, error) {
	c.invalidateIf(stale)
	if token := c.Token(); token != "" {
		return token, nil
	}

	c.logger.Debug("Token rejected, logging in again", "token", auth.Fingerprint(stale))
	return c.sharedLogin(ctx)
}
