package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	// appName names the user config directory.
	appName = "featurecompare"

	// envPrefix prefixes every environment override, e.g. FEATURECOMPARE_VARIANT.
	envPrefix = "FEATURECOMPARE"

	// configFileName is the file looked up in each search location.
	configFileName = "config.yaml"
)

// Loader handles configuration loading with Viper.
//
// Each Loader owns its own Viper instance, so loaders never share state.
// Use [NewLoader] to create one.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new [Loader] with a fresh Viper instance.
func NewLoader() *Loader {
	return &Loader{
		v: viper.New(),
	}
}

// Load resolves configuration from every source in priority order.
//
// Missing config files are not an error: the defaults from [DefaultConfig]
// apply. A config file that exists but cannot be parsed is an error.
func (l *Loader) Load() (*Config, error) {
	l.setup()

	if path := os.Getenv(envPrefix + "_CONFIG_PATH"); path != "" {
		l.v.SetConfigFile(path)
	} else {
		l.v.SetConfigName(strings.TrimSuffix(configFileName, filepath.Ext(configFileName)))
		l.v.SetConfigType("yaml")
		if dir, err := ConfigDir(); err == nil {
			l.v.AddConfigPath(dir)
		}
		l.v.AddConfigPath(".")
	}

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	return l.unmarshal()
}

// LoadFromFile loads configuration from a specific file path.
//
// The file type is inferred from its extension. Environment overrides still
// apply on top of the file.
func (l *Loader) LoadFromFile(path string) (*Config, error) {
	l.setup()
	l.v.SetConfigFile(path)

	if err := l.v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return l.unmarshal()
}

// MustLoad is like [Loader.Load] but panics on error.
func (l *Loader) MustLoad() *Config {
	cfg, err := l.Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

func (l *Loader) setup() {
	defaults := DefaultConfig()
	l.v.SetDefault("variant", defaults.Variant)
	l.v.SetDefault("workflow.delay", defaults.Workflow.Delay)
	l.v.SetDefault("log.level", defaults.Log.Level)
	l.v.SetDefault("log.format", defaults.Log.Format)
	l.v.SetDefault("output.format", defaults.Output.Format)

	l.v.SetEnvPrefix(envPrefix)
	l.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	l.v.AutomaticEnv()
}

func (l *Loader) unmarshal() (*Config, error) {
	cfg := DefaultConfig()
	if err := l.v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

// ConfigDir returns the platform-specific configuration directory for featurecompare.
func ConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config dir: %w", err)
	}
	return filepath.Join(base, appName), nil
}

// DefaultConfigPath returns the path of the config file in [ConfigDir].
func DefaultConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}
