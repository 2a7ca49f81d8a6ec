package main

import (
	"log"
	"os"
	"time"

	"github.com/holdcloud/hcctl/cmd/appcmd"
	"github.com/holdcloud/hcctl/cmd/globalcmd"
	"github.com/holdcloud/hcctl/config"
	"github.com/holdcloud/hcctl/constants"
	"github.com/holdcloud/hcctl/lib/console"
	"github.com/urfave/cli/v2"
)

func main() {
	// Initialize config
	config.InitConfig()

	err := newApp().Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}

// Build the CLI app.
func newApp() *cli.App {
	return &cli.App{
		Name:    "hcctl",
		Usage:   "HoldCloud container platform CLI",
		Version: "0.1.0",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Print verbose output",
			},
			&cli.StringFlag{
				Name:    "username",
				Aliases: []string{"u"},
				Usage:   "Username to log in with (overrides the config file)",
				EnvVars: []string{constants.UsernameEnvVar},
			},
			&cli.StringFlag{
				Name:    "password",
				Aliases: []string{"p"},
				Usage:   "Password to log in with",
				EnvVars: []string{constants.PasswordEnvVar},
			},
		},
		Before: func(c *cli.Context) error {
			if c.Bool("verbose") {
				config.I.Verbose = true
				console.SetVerbose(true)
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:   "login",
				Usage:  "Log in to check your credentials",
				Action: globalcmd.LogIn,
			},
			{
				Name:   "auth",
				Usage:  "Print configured identity and endpoints",
				Action: globalcmd.PrintAuthState,
			},
			{
				Name:   "configure",
				Usage:  "Update the global config file",
				Action: globalcmd.Configure,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "env", Usage: "Environment (lcl, dev, prd)"},
					&cli.StringFlag{Name: "base-url", Usage: "API base URL override"},
					&cli.StringFlag{Name: "username", Usage: "Username to log in with"},
					&cli.BoolFlag{Name: "insecure", Usage: "Skip TLS certificate verification"},
					&cli.Float64Flag{Name: "rps", Usage: "Max requests per second, 0 for unlimited"},
					&cli.DurationFlag{Name: "timeout", Usage: "Timeout of a single request"},
				},
			},
			{
				Name:      "services",
				Usage:     "List the services of a project",
				Aliases:   []string{"ls"},
				ArgsUsage: "<projectId>",
				Action:    appcmd.ListServices,
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "per-page", Usage: "Items per page"},
					&cli.IntFlag{Name: "page", Usage: "Page number, starting at 1"},
					&cli.StringFlag{Name: "filter", Usage: "Filter expression, e.g. name,^web$,"},
					&cli.StringFlag{Name: "sort", Usage: "Sort expression, e.g. a,name"},
				},
			},
			{
				Name:      "create",
				Usage:     "Create a container app",
				ArgsUsage: "<projectId>",
				Action:    appcmd.CreateApp,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Usage: "App name (generated if empty)"},
					&cli.StringFlag{Name: "kind", Value: "Deployment", Usage: "Workload kind (Deployment, StatefulSet)"},
					&cli.StringFlag{Name: "description", Aliases: []string{"d"}, Usage: "App description"},
					&cli.BoolFlag{Name: "check", Usage: "Fail if the name is already taken"},
				},
			},
			{
				Name:      "check-name",
				Usage:     "Check whether a service name is taken",
				ArgsUsage: "<projectId> <name>",
				Action:    appcmd.CheckName,
			},
			{
				Name:      "instances",
				Usage:     "Create the instances of a container app",
				ArgsUsage: "<appId>",
				Action:    appcmd.CreateInstances,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Usage: "Instances spec file (YAML or JSON)"},
				},
			},
			{
				Name:      "state",
				Usage:     "Print the state of a container app",
				ArgsUsage: "<appId>",
				Action:    appcmd.PrintState,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "wait", Aliases: []string{"w"}, Usage: "Wait until the app reaches this state"},
					&cli.DurationFlag{Name: "timeout", Value: 5 * time.Minute, Usage: "How long to wait"},
				},
			},
			{
				Name:      "restart",
				Usage:     "Restart a container app",
				ArgsUsage: "<appId>",
				Action:    appcmd.Restart,
			},
			{
				Name:      "destroy",
				Usage:     "Destroy a container app",
				ArgsUsage: "<appId>",
				Action:    appcmd.Destroy,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "yes",
						Aliases: []string{"y"},
						Usage:   "Skip confirmation",
					},
				},
			},
			{
				Name:      "open",
				Usage:     "Open the web console page of a project",
				ArgsUsage: "<projectId>",
				Action:    appcmd.OpenConsole,
			},
		},
	}
}
