package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/holdcloud/hcctl/constants"
	"github.com/holdcloud/hcctl/lib/console"
	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"
)

type Env string

const (
	// Local environment
	EnvLcl Env = "lcl"
	// Development environment
	EnvDev Env = "dev"
	// Production environment
	EnvPrd Env = "prd"
)

type APIConfig struct {
	// Overrides the environment's API base URL.
	BaseURL string `yaml:"base_url,omitempty" validate:"omitempty,url"`
	// Username to log in with. The password is never stored.
	Username string `yaml:"username,omitempty"`
	// Skip TLS certificate verification.
	InsecureSkipVerify bool `yaml:"insecure_skip_verify"`
	// Timeout of a single HTTP round trip.
	Timeout time.Duration `yaml:"timeout" validate:"gte=0"`
	// Max requests per second sent to the platform. Zero means unlimited.
	RequestsPerSecond float64 `yaml:"requests_per_second" validate:"gte=0"`
}

type Config struct {
	// Environment to run the CLI in.
	Env Env `yaml:",omitempty" validate:"omitempty,oneof=lcl dev prd"`
	// Whether or not to print verbose output.
	Verbose bool
	API     APIConfig `yaml:"api"`
	// Interval between polls when waiting for an app state.
	PollInterval time.Duration `yaml:"poll_interval" validate:"gte=0"`
	//
	// [Internal]
	//
	// Resolved API base URL.
	APIURL string `yaml:"-"`
	// HoldCloud web console URL.
	WebsiteURL string `yaml:"-"`
	// Rate limiter for requests to the platform, nil if unlimited.
	RateLimiter *rate.Limiter `yaml:"-" json:"-" validate:"-"`
}

// Singleton CLI config instance.
var I Config

// Returns path to the HoldCloud global config file.
func GetConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatal(err)
	}

	return filepath.Join(homeDir, constants.GlobalConfigFileName)
}

// Returns the web console URL based on the CLI environment.
func getWebsiteURL(env Env) string {
	switch env {
	case EnvDev:
		return "https://dev.console.holdcloud.com"
	case EnvLcl:
		return "http://localhost:3000"
	default:
		// Production is the default
		return "https://console.holdcloud.com"
	}
}

// Returns the API base URL based on the CLI environment.
func getAPIURL(env Env) string {
	switch env {
	case EnvDev:
		return "https://dev.console.holdcloud.com/api/v1"
	case EnvLcl:
		return "http://localhost:8080/api/v1"
	default:
		// Production is the default
		return "https://console.holdcloud.com/api/v1"
	}
}

// Returns the default config.
func Default() Config {
	return Config{
		Env: EnvPrd,
		API: APIConfig{
			Timeout: 30 * time.Second,
		},
		PollInterval: 2 * time.Second,
	}
}

// Read the config file at path as stored, without environment overrides or
// internal fields. A missing file yields the default config.
func ReadFile(path string) (Config, error) {
	config := Default()

	cBytes, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}
	if err == nil {
		// Decode file contents
		if err := yaml.Unmarshal(cBytes, &config); err != nil {
			return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	return config, nil
}

// Load the config file at path, apply environment overrides and fill the
// internal fields. A missing file yields the default config.
func Load(path string) (Config, error) {
	config, err := ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	ApplyEnvOverrides(&config, os.Getenv)
	SetInternalConfigFields(&config)

	if err := Validate(config); err != nil {
		return Config{}, err
	}

	return config, nil
}

// Apply environment variable overrides.
func ApplyEnvOverrides(config *Config, getenv func(string) string) {
	if env := getenv(constants.EnvEnvVar); env != "" {
		config.Env = Env(strings.ToLower(env))
	}
	if baseURL := getenv(constants.BaseURLEnvVar); baseURL != "" {
		config.API.BaseURL = baseURL
	}
	if username := getenv(constants.UsernameEnvVar); username != "" {
		config.API.Username = username
	}
	if getenv(constants.VerboseEnvVar) == "1" {
		config.Verbose = true
	}
}

// Validate a config.
func Validate(config Config) error {
	v := validator.New()
	if err := v.Struct(config); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Initialize the CLI config.
func InitConfig() Config {
	config, err := Load(GetConfigPath())
	if err != nil {
		console.Fatal("Failed to load config: %v", err)
	}
	I = config

	console.SetVerbose(I.Verbose)
	if I.Verbose {
		// Print config as JSON
		cfgJson, err := json.MarshalIndent(I, "", "  ")
		if err != nil {
			log.Fatal(err)
		}

		console.Verbose("Config:")
		console.Verbose("%s", string(cfgJson))
	}

	return I
}

// Set internal config fields.
func SetInternalConfigFields(config *Config) {
	// Set defaults for missing fields
	if config.Env == "" {
		config.Env = EnvPrd
	}

	// Set internal config fields
	config.WebsiteURL = getWebsiteURL(config.Env)
	config.APIURL = config.API.BaseURL
	if config.APIURL == "" {
		config.APIURL = getAPIURL(config.Env)
	}
	config.RateLimiter = nil
	if config.API.RequestsPerSecond > 0 {
		config.RateLimiter = rate.NewLimiter(rate.Limit(config.API.RequestsPerSecond), 1)
	}
}

// Omit internal config fields from a config object.
// This should always be called before writing it to a file.
func OmitInternalConfig(config *Config) {
	// Remove internal config fields
	config.APIURL = ""
	config.WebsiteURL = ""
	config.RateLimiter = nil
}
