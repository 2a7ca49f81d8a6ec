package appcmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/holdcloud/hcctl/lib/console"
	"github.com/holdcloud/hcctl/lib/session"
	"github.com/urfave/cli/v2"
)

// Source of confirmation answers.
var stdin io.Reader = os.Stdin

// Ask a yes/no question, defaulting to no.
func confirm(question string) bool {
	fmt.Fprintf(console.Out, "%s [y/N] ", question)
	answer, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

// Restart a container app.
func Restart(c *cli.Context) error {
	appID, err := intArg(c, 0, "appId")
	if err != nil {
		return err
	}

	client, err := session.New(c)
	if err != nil {
		return err
	}

	msg, err := client.Restart(c.Context, appID)
	if err != nil {
		return err
	}

	console.Success("Restarting app #%d", appID)
	if msg != "" {
		console.Verbose("Server response: %s", msg)
	}
	return nil
}

// Destroy a container app.
func Destroy(c *cli.Context) error {
	appID, err := intArg(c, 0, "appId")
	if err != nil {
		return err
	}

	if !c.Bool("yes") && !confirm(fmt.Sprintf("Destroy app #%d? This cannot be undone.", appID)) {
		console.Info("Aborted")
		return nil
	}

	client, err := session.New(c)
	if err != nil {
		return err
	}

	msg, err := client.Destroy(c.Context, appID)
	if err != nil {
		return err
	}

	console.Success("Destroyed app #%d", appID)
	if msg != "" {
		console.Verbose("Server response: %s", msg)
	}
	return nil
}
