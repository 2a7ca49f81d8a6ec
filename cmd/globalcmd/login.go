package globalcmd

import (
	"github.com/holdcloud/hcctl/constants"
	"github.com/holdcloud/hcctl/lib/auth"
	"github.com/holdcloud/hcctl/lib/console"
	"github.com/holdcloud/hcctl/lib/session"
	"github.com/urfave/cli/v2"
)

// Log in to check the configured credentials.
// The token is only kept for the lifetime of the process.
func LogIn(c *cli.Context) error {
	client, err := session.New(c)
	if err != nil {
		return err
	}

	console.Verbose("Logging in to %s as %s...", client.BaseURL(), client.Username())
	token, err := client.Authenticate(c.Context)
	if err != nil {
		return console.Error(constants.ErrMsgAuthFailed+": %v", err)
	}

	console.Success("Authenticated as %s", client.Username())
	console.Verbose("Token fingerprint: %s", auth.Fingerprint(token))
	return nil
}
