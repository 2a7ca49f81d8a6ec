package globalcmd

import (
	"fmt"

	"github.com/TwiN/go-color"
	"github.com/holdcloud/hcctl/config"
	"github.com/holdcloud/hcctl/constants"
	"github.com/holdcloud/hcctl/lib/console"
	"github.com/urfave/cli/v2"
)

// Print the configured identity and endpoints.
func PrintAuthState(c *cli.Context) error {
	if config.I.API.Username == "" {
		return console.Error(constants.ErrMsgNoUsername)
	}

	fmt.Fprintln(console.Out, color.Ize(color.Cyan, "Username: ")+config.I.API.Username)
	fmt.Fprintln(console.Out, color.Ize(color.Cyan, "Environment: ")+string(config.I.Env))
	fmt.Fprintln(console.Out, color.Ize(color.Cyan, "API: ")+config.I.APIURL)
	fmt.Fprintln(console.Out, color.Ize(color.Cyan, "Console: ")+config.I.WebsiteURL)
	if config.I.API.InsecureSkipVerify {
		console.Warning("TLS certificate verification is disabled")
	}

	return nil
}
