package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inkpad-io/inkpad/internal/cache"
	"github.com/inkpad-io/inkpad/internal/config"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove the on-disk asset cache",
	Long: `Delete the cache file so the next production build starts from
scratch. Removing a cache that does not exist is not an error.`,
	RunE: runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	store := cache.NewStore(cfg.CachePath, config.Version)
	if err := store.Remove(); err != nil {
		return fmt.Errorf("failed to remove cache: %w", err)
	}

	fmt.Printf("Removed %s\n", cfg.CachePath)
	return nil
}
