package holdcloud

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/holdcloud/hcctl/models"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var validate = validator.New()

var envNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func validateAppSpec(spec models.ContainerAppSpec) error {
	if err := validate.Struct(spec); err != nil {
		return fmt.Errorf("invalid container app spec: %w", err)
	}
	return nil
}

func validateInstancesSpec(spec models.InstancesSpec) error {
	if err := validate.Struct(spec); err != nil {
		return fmt.Errorf("invalid instances spec: %w", err)
	}

	// Report the first bad name in sorted order
	names := maps.Keys(spec.Container.Envs)
	slices.Sort(names)
	for _, name := range names {
		if !envNamePattern.MatchString(name) {
			return fmt.Errorf("invalid instances spec: bad environment variable name %q", name)
		}
	}

	return nil
}
