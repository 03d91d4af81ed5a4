// Package cmd provides the command-line interface for the inkpad
// asset pipeline.
//
// Configuration System:
//
//	The CLI supports flexible configuration through multiple sources
//	with clear precedence:
//	1. Command-line flags (--config, --root, etc.) - highest priority
//	2. INKPAD_CONFIG_FILE environment variable - custom config file path
//	3. Individual environment variables (INKPAD_CACHE_PATH, etc.)
//	4. Configuration files (.inkpad.yml) - lowest priority
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/inkpad-io/inkpad/internal/config"
	"github.com/inkpad-io/inkpad/internal/logging"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "inkpad",
	Short: "Compile and cache the inkpad client assets",
	Long: `inkpad assembles the editor's client assets (scripts, styles, markup,
themes, language modes, on-demand libraries) into ready-to-serve
bundles and maintains an on-disk cache of those bundles so repeated
process starts avoid recompilation.

Quick Start:
  inkpad build                    Compile assets and refresh the cache
  inkpad build --dev              Compile without minification or caching
  inkpad clean                    Remove the on-disk cache
  inkpad version                  Print the pipeline version`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .inkpad.yml, can also use INKPAD_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().String("root", "", "project root containing the static/ and vendor/ asset trees")
	rootCmd.PersistentFlags().String("cache-path", "", "compiled cache file location")
	rootCmd.PersistentFlags().StringP("log-level", "l", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "", "log format (text, json)")

	viper.BindPFlag("root", rootCmd.PersistentFlags().Lookup("root"))
	viper.BindPFlag("cache_path", rootCmd.PersistentFlags().Lookup("cache-path"))
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))
}

// initConfig initializes the configuration system.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfig := os.Getenv("INKPAD_CONFIG_FILE"); envConfig != "" {
		viper.SetConfigFile(envConfig)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(".inkpad")
		viper.SetConfigType("yml")
	}

	viper.SetEnvPrefix("INKPAD")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// Missing config files are fine; the defaults cover them.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
		}
	}
}

// newLogger builds the process logger from loaded configuration.
func newLogger(cfg *config.Config) *logging.Logger {
	return logging.NewLogger(&logging.Config{
		Level:  logging.ParseLevel(cfg.Log.Level),
		Format: cfg.Log.Format,
		Output: os.Stderr,
	})
}
