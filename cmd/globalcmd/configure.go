package globalcmd

import (
	"github.com/holdcloud/hcctl/config"
	"github.com/holdcloud/hcctl/lib/configio"
	"github.com/holdcloud/hcctl/lib/console"
	"github.com/urfave/cli/v2"
)

// Update the global config file from flags.
// Only flags that were set are changed. Environment overrides and
// `--verbose` apply to this run only and are never saved.
func Configure(c *cli.Context) error {
	path := config.GetConfigPath()
	cfg, err := config.ReadFile(path)
	if err != nil {
		return console.Error("%v", err)
	}

	if c.IsSet("env") {
		cfg.Env = config.Env(c.String("env"))
	}
	if c.IsSet("base-url") {
		cfg.API.BaseURL = c.String("base-url")
	}
	if c.IsSet("username") {
		cfg.API.Username = c.String("username")
	}
	if c.IsSet("insecure") {
		cfg.API.InsecureSkipVerify = c.Bool("insecure")
	}
	if c.IsSet("rps") {
		cfg.API.RequestsPerSecond = c.Float64("rps")
	}
	if c.IsSet("timeout") {
		cfg.API.Timeout = c.Duration("timeout")
	}

	config.SetInternalConfigFields(&cfg)
	if err := config.Validate(cfg); err != nil {
		return console.Error("%v", err)
	}

	if err := configio.SaveConfig(path, cfg); err != nil {
		return err
	}

	console.Success("Saved config to %s", path)
	return nil
}
