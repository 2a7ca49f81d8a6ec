package appcmd

import (
	"strconv"

	"github.com/holdcloud/hcctl/lib/console"
	"github.com/urfave/cli/v2"
)

// Parse the positional argument at index i as a positive integer id.
func intArg(c *cli.Context, i int, name string) (int, error) {
	raw := c.Args().Get(i)
	if raw == "" {
		return 0, console.Error("Missing argument <%s>", name)
	}

	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, console.Error("Invalid <%s> %q: must be a positive integer", name, raw)
	}

	return id, nil
}

// Parse the positional argument at index i as a non-empty string.
func stringArg(c *cli.Context, i int, name string) (string, error) {
	raw := c.Args().Get(i)
	if raw == "" {
		return "", console.Error("Missing argument <%s>", name)
	}
	return raw, nil
}
