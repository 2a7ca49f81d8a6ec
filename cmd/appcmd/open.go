package appcmd

import (
	"fmt"

	"github.com/holdcloud/hcctl/config"
	"github.com/holdcloud/hcctl/lib/console"
	"github.com/holdcloud/hcctl/lib/system"
	"github.com/urfave/cli/v2"
)

// Returns the web console URL of a project.
func projectConsoleURL(websiteURL string, projectID int) string {
	return fmt.Sprintf("%s/project/%d/services", websiteURL, projectID)
}

// Open the web console page of a project.
func OpenConsole(c *cli.Context) error {
	projectID, err := intArg(c, 0, "projectId")
	if err != nil {
		return err
	}

	consoleURL := projectConsoleURL(config.I.WebsiteURL, projectID)
	console.Info("Opening %s", consoleURL)
	if err := system.OpenBrowser(consoleURL); err != nil {
		return console.Error("Could not open browser: %v", err)
	}
	return nil
}
