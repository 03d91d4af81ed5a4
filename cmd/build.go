package cmd

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/inkpad-io/inkpad/internal/config"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Compile all client assets and refresh the on-disk cache",
	Long: `Compile every asset group (script bundle, style bundle, markup
variants, themes, language modes, on-demand libraries) and persist the
encoded result to the cache file. When the cache is already at least
as new as every source file it is only validated, not rebuilt.

Examples:
  inkpad build                    # Freshness-gated production build
  inkpad build --dev              # Unminified compile, cache untouched`,
	RunE: runBuild,
}

var buildDev bool

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().BoolVar(&buildDev, "dev", false, "development compile: no minification, no cache read or write")
}

func runBuild(cmd *cobra.Command, args []string) error {
	startTime := time.Now()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	log := newLogger(cfg)
	ctx := cmd.Context()

	orch, err := newOrchestrator(cfg, log)
	if err != nil {
		return err
	}

	if buildDev {
		compiled, err := orch.Load(ctx, true)
		if err != nil {
			return err
		}
		for _, group := range []string{"resources", "themes", "modes", "libs"} {
			entries := compiled.Groups()[group]
			var size int64
			for _, e := range entries {
				size += int64(len(e.Data))
			}
			fmt.Printf("  %-10s %3d entries  %s\n", group, len(entries), humanize.Bytes(uint64(size)))
		}
		fmt.Printf("Compiled %d entries (%s) in %v\n",
			compiled.EntryCount(),
			humanize.Bytes(uint64(compiled.TotalSize())),
			time.Since(startTime).Round(time.Millisecond))
		return nil
	}

	if err := orch.Build(ctx); err != nil {
		return err
	}

	fmt.Printf("Asset cache ready at %s in %v\n",
		cfg.CachePath, time.Since(startTime).Round(time.Millisecond))
	return nil
}
