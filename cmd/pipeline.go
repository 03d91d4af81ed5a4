package cmd

import (
	"fmt"

	"github.com/inkpad-io/inkpad/internal/assets"
	"github.com/inkpad-io/inkpad/internal/build"
	"github.com/inkpad-io/inkpad/internal/cache"
	"github.com/inkpad-io/inkpad/internal/config"
	"github.com/inkpad-io/inkpad/internal/logging"
	"github.com/inkpad-io/inkpad/internal/transform"
)

// newOrchestrator wires the full pipeline from loaded configuration:
// manifest, source trees, the default minifier transforms, the cache
// store, and the orchestrator on top.
func newOrchestrator(cfg *config.Config, log *logging.Logger) (*build.Orchestrator, error) {
	manifest, err := assets.LoadManifest(cfg.Manifest)
	if err != nil {
		return nil, err
	}

	src := assets.NewSources(manifest, cfg.StaticDir(), cfg.VendorDir())

	compiler, err := assets.NewCompiler(src, transform.NewMinifier(), config.Version, log.WithComponent("compile"))
	if err != nil {
		return nil, fmt.Errorf("configure compiler: %w", err)
	}

	store := cache.NewStore(cfg.CachePath, config.Version)

	return build.NewOrchestrator(compiler, store, log.WithComponent("build"))
}
