package holdcloud

import (
	"context"
	"net/http"
	"net/url"

	"github.com/holdcloud/hcctl/lib/api"
	"github.com/holdcloud/hcctl/lib/httpvalidation"
	"github.com/holdcloud/hcctl/lib/httpw"
	"github.com/lucsky/cuid"
)

// One API call, built per operation.
type request struct {
	method string
	path   string
	query  url.Values
	body   any
}

// Sends r with the session token attached and decodes the response into out.
//
// A 401 refreshes the token and resends r exactly once; whatever the resend
// returns is final. Every other status goes straight to validation.
func (c *Client) do(ctx context.Context, r request, out any) error {
	body, err := httpw.EncodeJSON(r.body)
	if err != nil {
		return err
	}
	reqURL := api.BuildURLWithQuery(c.baseURL, r.path, r.query)

	// Shared by the retry so both attempts can be matched up server side
	requestID := cuid.New()

	token, err := c.ensureToken(ctx)
	if err != nil {
		return err
	}

	res, err := c.roundTrip(ctx, r.method, reqURL, body, token, requestID)
	if err != nil {
		return err
	}

	if res.StatusCode == http.StatusUnauthorized {
		httpw.Discard(res)

		token, err = c.refreshToken(ctx, token)
		if err != nil {
			return err
		}

		res, err = c.roundTrip(ctx, r.method, reqURL, body, token, requestID)
		if err != nil {
			return err
		}
	}
	defer res.Body.Close()

	if err := httpvalidation.ValidateResponse(res); err != nil {
		return err
	}

	return httpw.DecodeJSON(res, out)
}
