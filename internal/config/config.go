// Package config provides configuration management for the inkpad
// asset pipeline using Viper for flexible loading from files,
// environment variables, and command-line flags.
//
// Configuration comes from .inkpad.yml, INKPAD_* environment variable
// overrides, and bound flags. It covers the project root that holds
// the static/ and vendor/ asset trees, the asset manifest path, the
// compiled-cache file location, and logging options.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Version is the pipeline version stamped into the persisted cache
// meta record. Overridable at link time.
var Version = "1.4.0"

type Config struct {
	// Root is the project directory containing the static/ and
	// vendor/ asset trees.
	Root string `yaml:"root" mapstructure:"root"`

	// Manifest is the asset manifest path, relative to Root unless
	// absolute.
	Manifest string `yaml:"manifest" mapstructure:"manifest"`

	// CachePath is the compiled-cache file location.
	CachePath string `yaml:"cache_path" mapstructure:"cache_path"`

	Log LogConfig `yaml:"log" mapstructure:"log"`
}

type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// EnvCachePath is the environment override for the cache file
// location. It wins over both config file and default.
const EnvCachePath = "INKPAD_CACHE_PATH"

// Load builds the configuration from viper state, applies defaults,
// and validates the result.
func Load() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	if config.Root == "" {
		config.Root = "."
	}
	if config.Manifest == "" {
		config.Manifest = "assets.yml"
	}
	if !filepath.IsAbs(config.Manifest) {
		config.Manifest = filepath.Join(config.Root, config.Manifest)
	}

	if env := os.Getenv(EnvCachePath); env != "" {
		config.CachePath = env
	}
	if config.CachePath == "" {
		config.CachePath = DefaultCachePath()
	}

	if config.Log.Level == "" {
		config.Log.Level = "info"
	}
	if config.Log.Format == "" {
		config.Log.Format = "text"
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// DefaultCachePath returns the cache file location under the per-user
// cache directory, falling back to a dotfile in the working directory
// when the platform reports no cache dir.
func DefaultCachePath() string {
	base, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(".inkpad", "assets.cache")
	}
	return filepath.Join(base, "inkpad", "assets.cache")
}

// StaticDir returns the project-local asset tree.
func (c *Config) StaticDir() string {
	return filepath.Join(c.Root, "static")
}

// VendorDir returns the third-party asset tree.
func (c *Config) VendorDir() string {
	return filepath.Join(c.Root, "vendor")
}

// validateConfig validates configuration values for security and
// correctness.
func validateConfig(config *Config) error {
	if err := validatePath(config.Root); err != nil {
		return fmt.Errorf("root: %w", err)
	}

	switch config.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log level %q is not one of debug, info, warn, error", config.Log.Level)
	}

	switch config.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log format %q is not one of text, json", config.Log.Format)
	}

	return nil
}

// validatePath validates a file path for security.
func validatePath(path string) error {
	if path == "" {
		return fmt.Errorf("empty path")
	}

	cleanPath := filepath.Clean(path)

	// Reject shell metacharacters; paths end up in log output and
	// occasionally in generated commands.
	dangerousChars := []string{";", "&", "|", "$", "`", "(", ")", "<", ">", "\"", "'"}
	for _, char := range dangerousChars {
		if strings.Contains(cleanPath, char) {
			return fmt.Errorf("path contains dangerous character: %s", char)
		}
	}

	return nil
}
