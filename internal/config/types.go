// Package config provides configuration loading and management for featurecompare.
//
// Configuration is loaded using Viper, supporting YAML config files and environment
// variable overrides. The defaults work out of the box; a config file only needs
// to mention the values it changes.
//
// Key types:
//   - [Config] is the root configuration container with all settings
//   - [Loader] handles Viper-based configuration loading
//   - [WorkflowConfig] controls the guarded workflow's simulated work
//   - [LogConfig] selects the diagnostic logger's level and encoding
//   - [OutputConfig] selects how command results are rendered
//
// Configuration priority (highest to lowest):
//  1. Environment variables (FEATURECOMPARE_ prefix)
//  2. Config file specified by FEATURECOMPARE_CONFIG_PATH
//  3. User config directory (platform-standard):
//     - Linux: ~/.config/featurecompare/config.yaml
//     - macOS: ~/Library/Application Support/featurecompare/config.yaml
//     - Windows: %APPDATA%\featurecompare\config.yaml
//  4. ./config.yaml
//  5. [DefaultConfig] defaults
package config

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

// Output formats accepted by [OutputConfig.Format].
const (
	FormatText  = "text"
	FormatTable = "table"
	FormatYAML  = "yaml"
)

// Config represents the root configuration structure.
//
// This is the main configuration container loaded by [Loader] and used throughout
// the application. Use [DefaultConfig] to get sensible defaults.
type Config struct {
	// Variant is the implementation used by single-variant commands.
	// Must be one of the names returned by feature.Variants.
	// Default: "modern"
	Variant string `mapstructure:"variant"`

	// Workflow contains settings for the guarded workflow.
	Workflow WorkflowConfig `mapstructure:"workflow"`

	// Log contains diagnostic logger settings.
	Log LogConfig `mapstructure:"log"`

	// Output contains terminal output formatting configuration.
	Output OutputConfig `mapstructure:"output"`
}

// WorkflowConfig controls the guarded workflow.
type WorkflowConfig struct {
	// Delay is how long the recover step waits when it does not fail.
	// Accepts Go duration strings in files and env ("250ms", "1s").
	// Default: 500ms
	Delay time.Duration `mapstructure:"delay"`
}

// LogConfig contains diagnostic logger settings.
type LogConfig struct {
	// Level is a zap level name: debug, info, warn, error.
	// Default: "info"
	Level string `mapstructure:"level"`

	// Format is the log encoding, "console" or "json".
	// Default: "console"
	Format string `mapstructure:"format"`
}

// OutputConfig contains terminal output formatting configuration.
type OutputConfig struct {
	// Format is how the settings table is rendered: "text", "table" or "yaml".
	// Default: "text"
	Format string `mapstructure:"format"`
}

// DefaultConfig returns a new [Config] with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Variant: "modern",
		Workflow: WorkflowConfig{
			Delay: 500 * time.Millisecond,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Output: OutputConfig{
			Format: FormatText,
		},
	}
}

// OutputFormats returns the accepted values for [OutputConfig.Format].
func OutputFormats() []string {
	return []string{FormatText, FormatTable, FormatYAML}
}

// Validate reports every problem with the configuration at once.
//
// Variant names are checked by the caller, which knows the registered
// implementations.
func (c *Config) Validate() error {
	var errs []error
	if c.Variant == "" {
		errs = append(errs, errors.New("variant must not be empty"))
	}
	if c.Workflow.Delay < 0 {
		errs = append(errs, fmt.Errorf("workflow.delay must not be negative, got %s", c.Workflow.Delay))
	}
	if !slices.Contains([]string{"console", "json"}, c.Log.Format) {
		errs = append(errs, fmt.Errorf("log.format must be console or json, got %q", c.Log.Format))
	}
	if !slices.Contains(OutputFormats(), c.Output.Format) {
		errs = append(errs, fmt.Errorf("output.format must be one of %v, got %q", OutputFormats(), c.Output.Format))
	}
	return errors.Join(errs...)
}
