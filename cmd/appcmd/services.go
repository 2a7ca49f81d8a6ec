package appcmd

import (
	"fmt"

	"github.com/TwiN/go-color"
	"github.com/holdcloud/hcctl/lib/console"
	"github.com/holdcloud/hcctl/lib/session"
	"github.com/holdcloud/hcctl/lib/util"
	"github.com/holdcloud/hcctl/models"
	"github.com/samber/lo"
	"github.com/urfave/cli/v2"
)

// List the services of a project.
func ListServices(c *cli.Context) error {
	projectID, err := intArg(c, 0, "projectId")
	if err != nil {
		return err
	}

	client, err := session.New(c)
	if err != nil {
		return err
	}

	list, err := client.ListServices(c.Context, projectID, &models.ListQuery{
		ItemsPerPage: c.Int("per-page"),
		Page:         c.Int("page"),
		FilterBy:     c.String("filter"),
		SortBy:       c.String("sort"),
	})
	if err != nil {
		return err
	}

	if len(list.Items) == 0 {
		console.Info("No services found in project %d", projectID)
		return nil
	}

	printServices(list.Items)
	console.Verbose("Showing %d of %d services", len(list.Items), list.TotalItems)
	return nil
}

func printServices(services []models.Service) {
	nameWidth := lo.Max(lo.Map(services, func(s models.Service, _ int) int {
		return len(util.Truncate(s.Name, 40))
	}))

	for _, s := range services {
		name := fmt.Sprintf("%-*s", nameWidth, util.Truncate(s.Name, 40))
		fmt.Fprintf(console.Out, "%s %s  %-12s replicas=%d cpu=%.2f memory=%s %s\n",
			color.Ize(color.Gray, fmt.Sprintf("#%-6d", s.ID)),
			color.Ize(color.Cyan, name),
			s.Kind,
			s.Replicas,
			s.CPU,
			util.FormatBytesSize(s.Memory),
			color.Ize(color.Gray, s.State),
		)
	}
}
