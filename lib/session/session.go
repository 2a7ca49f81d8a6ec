package session

import (
	"log/slog"
	"os"

	"github.com/holdcloud/hcctl/config"
	"github.com/holdcloud/hcctl/constants"
	"github.com/holdcloud/hcctl/lib/console"
	"github.com/holdcloud/hcctl/lib/holdcloud"
	"github.com/urfave/cli/v2"
)

// Resolve the password from the `--password` flag, falling back to the environment.
func Password(c *cli.Context) string {
	if p := c.String("password"); p != "" {
		return p
	}
	return os.Getenv(constants.PasswordEnvVar)
}

// Create a platform client from the global config and command flags.
func New(c *cli.Context) (*holdcloud.Client, error) {
	return NewFromConfig(config.I, c.String("username"), Password(c))
}

// Create a platform client from a config.
// A non-empty username overrides the configured one.
func NewFromConfig(cfg config.Config, username string, password string) (*holdcloud.Client, error) {
	if username == "" {
		username = cfg.API.Username
	}
	if username == "" {
		return nil, console.Error(constants.ErrMsgNoUsername)
	}
	if password == "" {
		return nil, console.Error(constants.ErrMsgNoPassword)
	}

	opts := []holdcloud.Option{
		holdcloud.WithLogger(slog.New(console.NewHandler(nil))),
		holdcloud.WithTimeout(cfg.API.Timeout),
	}
	if cfg.API.InsecureSkipVerify {
		opts = append(opts, holdcloud.WithInsecureSkipVerify())
	}
	if cfg.RateLimiter != nil {
		opts = append(opts, holdcloud.WithRateLimiter(cfg.RateLimiter))
	}

	return holdcloud.New(username, password, cfg.APIURL, opts...)
}
