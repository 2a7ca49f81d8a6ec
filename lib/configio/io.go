package configio

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/holdcloud/hcctl/config"
	"gopkg.in/yaml.v3"
)

// Save global config to file, creating its directory if needed.
// Internal fields are left out.
func SaveConfig(path string, c config.Config) error {
	config.OmitInternalConfig(&c)

	cYaml, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("error while encoding config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error while creating config directory: %w", err)
	}

	if err := os.WriteFile(path, cYaml, 0600); err != nil {
		return fmt.Errorf("error while writing config: %w", err)
	}

	return nil
}
