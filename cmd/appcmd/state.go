package appcmd

import (
	"context"
	"fmt"
	"time"

	"github.com/TwiN/go-color"
	"github.com/holdcloud/hcctl/config"
	"github.com/holdcloud/hcctl/lib/console"
	"github.com/holdcloud/hcctl/lib/session"
	"github.com/holdcloud/hcctl/lib/util"
	"github.com/holdcloud/hcctl/models"
	"github.com/urfave/cli/v2"
)

// Max number of polls that fit in timeout. The first poll is immediate.
func pollCount(timeout, interval time.Duration) int {
	if interval <= 0 || timeout <= 0 {
		return 1
	}
	return int(timeout/interval) + 1
}

// Print the state of a container app, optionally waiting for a given state.
func PrintState(c *cli.Context) error {
	appID, err := intArg(c, 0, "appId")
	if err != nil {
		return err
	}

	client, err := session.New(c)
	if err != nil {
		return err
	}

	want := c.String("wait")
	if want == "" {
		state, err := client.GetState(c.Context, appID)
		if err != nil {
			return err
		}
		fmt.Fprintln(console.Out, color.Ize(color.Cyan, fmt.Sprintf("App #%d: ", appID))+state.State)
		return nil
	}

	timeout := c.Duration("timeout")
	interval := config.I.PollInterval
	if interval <= 0 {
		interval = time.Second
	}

	ctx, cancel := context.WithTimeout(c.Context, timeout)
	defer cancel()

	p, bar := util.NewProgressBar(pollCount(timeout, interval), fmt.Sprintf("Waiting for %s", want))

	state, err := client.WaitForState(ctx, appID, want, interval, func(s models.AppState) {
		bar.Increment()
		console.Verbose("App #%d is %s", appID, s.State)
	})
	if err != nil {
		bar.Abort(false)
		p.Wait()
		return err
	}

	bar.SetTotal(-1, true)
	p.Wait()
	console.Success("App #%d is %s", appID, state.State)
	return nil
}
