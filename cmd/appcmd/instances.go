package appcmd

import (
	"fmt"
	"os"

	"github.com/holdcloud/hcctl/lib/console"
	"github.com/holdcloud/hcctl/lib/session"
	"github.com/holdcloud/hcctl/models"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

// Read an instances spec from a YAML (or JSON) file.
func readInstancesSpec(path string) (models.InstancesSpec, error) {
	specBytes, err := os.ReadFile(path)
	if err != nil {
		return models.InstancesSpec{}, err
	}

	var spec models.InstancesSpec
	if err := yaml.Unmarshal(specBytes, &spec); err != nil {
		return models.InstancesSpec{}, fmt.Errorf("failed to parse instances spec %s: %w", path, err)
	}

	return spec, nil
}

// Create the instances of a container app from a spec file.
func CreateInstances(c *cli.Context) error {
	appID, err := intArg(c, 0, "appId")
	if err != nil {
		return err
	}

	path := c.String("file")
	if path == "" {
		return console.Error("Missing `--file` with the instances spec")
	}
	spec, err := readInstancesSpec(path)
	if err != nil {
		return err
	}

	client, err := session.New(c)
	if err != nil {
		return err
	}

	console.Verbose("Creating %d instance(s) of %s for app #%d...", spec.Replicas, spec.Container.Image, appID)
	if err := client.CreateInstances(c.Context, appID, spec); err != nil {
		return err
	}

	console.Success("Created instances for app #%d", appID)
	return nil
}
