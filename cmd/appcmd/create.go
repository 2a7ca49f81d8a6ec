package appcmd

import (
	"github.com/holdcloud/hcctl/lib/console"
	"github.com/holdcloud/hcctl/lib/session"
	"github.com/holdcloud/hcctl/models"
	"github.com/lucsky/cuid"
	"github.com/urfave/cli/v2"
)

// Create a container app in a project.
func CreateApp(c *cli.Context) error {
	projectID, err := intArg(c, 0, "projectId")
	if err != nil {
		return err
	}

	name := c.String("name")
	if name == "" {
		name = "app-" + cuid.Slug()
	}

	client, err := session.New(c)
	if err != nil {
		return err
	}

	if c.Bool("check") {
		check, err := client.CheckNameTaken(c.Context, projectID, name)
		if err != nil {
			return err
		}
		if check.Conflict {
			return console.Error("Name %q is already used by service #%d", name, check.ExistingID)
		}
	}

	app, err := client.CreateApp(c.Context, projectID, models.ContainerAppSpec{
		Name:        name,
		Kind:        c.String("kind"),
		Description: c.String("description"),
	})
	if err != nil {
		return err
	}

	console.Success("Created container app %q (#%d)", name, app.ID)
	return nil
}

// Check whether a service name is already used in a project.
func CheckName(c *cli.Context) error {
	projectID, err := intArg(c, 0, "projectId")
	if err != nil {
		return err
	}
	name, err := stringArg(c, 1, "name")
	if err != nil {
		return err
	}

	client, err := session.New(c)
	if err != nil {
		return err
	}

	check, err := client.CheckNameTaken(c.Context, projectID, name)
	if err != nil {
		return err
	}

	if check.Conflict {
		console.Warning("Name %q is taken by service #%d", name, check.ExistingID)
		return cli.Exit("", 1)
	}

	console.Success("Name %q is available", name)
	return nil
}
