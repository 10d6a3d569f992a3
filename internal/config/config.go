// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultDataSource is the data file location, relative to the page template.
const DefaultDataSource = "assets/data.json"

// DefaultTimeoutSeconds bounds a remote data fetch.
const DefaultTimeoutSeconds = 30

// DataSourceEnv names the environment variable that supplies a default data source.
const DataSourceEnv = "RESULTS_DATA"

// Config represents the CLI configuration that can be loaded from a JSON or YAML file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Data     string `json:"data,omitempty" yaml:"data,omitempty"`         // Data source: URL or path relative to the template
	Template string `json:"template,omitempty" yaml:"template,omitempty"` // Path to HTML page template (empty: built-in)
	Out      string `json:"out,omitempty" yaml:"out,omitempty"`           // Output HTML path ("-" or empty: stdout)

	// Behavior
	ShowTable      bool `json:"show_table,omitempty" yaml:"show_table,omitempty"`                                      // Append the data preview table
	Verbose        bool `json:"verbose,omitempty" yaml:"verbose,omitempty"`                                            // Print detailed debug information
	TimeoutSeconds int  `json:"timeout_seconds,omitempty" yaml:"timeout_seconds,omitempty" validate:"gte=0,lte=600"` // Remote fetch timeout
}

// LoadConfig loads configuration from a JSON or YAML file, chosen by extension.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if c.Template != "" {
		if _, err := os.Stat(c.Template); os.IsNotExist(err) {
			return fmt.Errorf("config error: template file not found: %s", c.Template)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Data == "" {
		result.Data = defaults.Data
	}
	if result.Template == "" {
		result.Template = defaults.Template
	}
	if result.Out == "" {
		result.Out = defaults.Out
	}
	if result.TimeoutSeconds == 0 {
		result.TimeoutSeconds = defaults.TimeoutSeconds
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// Defaults returns the built-in configuration. The data source honors RESULTS_DATA.
func Defaults() Config {
	data := os.Getenv(DataSourceEnv)
	if data == "" {
		data = DefaultDataSource
	}
	return Config{
		Data:           data,
		TimeoutSeconds: DefaultTimeoutSeconds,
	}
}

// Timeout returns the fetch timeout as a duration.
func (c *Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return DefaultTimeoutSeconds * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
