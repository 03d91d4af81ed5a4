package build

import (
	"context"
	"fmt"

	"github.com/inkpad-io/inkpad/internal/assets"
	"github.com/inkpad-io/inkpad/internal/cache"
	"github.com/inkpad-io/inkpad/internal/logging"
	"github.com/inkpad-io/inkpad/internal/types"
)

// Orchestrator is the pipeline entry point. It chooses between dev
// compilation (always recompile, never persist, minify off) and the
// production freshness-gated, cache-backed path, and drives the
// stages in order: freshness check, compile, encode, persist.
//
// The cache file is the only shared mutable resource; the design
// assumes a single builder per cache path. Concurrent builders need
// an external mutual-exclusion guarantee.
type Orchestrator struct {
	compiler *assets.Compiler
	store    *cache.Store
	log      *logging.Logger
}

// NewOrchestrator wires the pipeline together. Both collaborators are
// mandatory.
func NewOrchestrator(compiler *assets.Compiler, store *cache.Store, log *logging.Logger) (*Orchestrator, error) {
	if compiler == nil {
		return nil, fmt.Errorf("build: no compiler configured")
	}
	if store == nil {
		return nil, fmt.Errorf("build: no cache store configured")
	}
	if log == nil {
		log = logging.Nop()
	}
	return &Orchestrator{compiler: compiler, store: store, log: log}, nil
}

// Load returns the compiled cache for serving. In dev mode every call
// recompiles with minification off and the cache file is never read
// or written. In production mode a fresh, parseable persisted cache
// is returned directly; any failure along that path falls through to
// a full minified compile that is persisted before returning.
func (o *Orchestrator) Load(ctx context.Context, dev bool) (*types.Cache, error) {
	if dev {
		return o.compile(ctx, false, false)
	}

	if Fresh(ctx, o.store.Path(), o.compiler.Sources()) {
		cached, err := o.store.Load()
		if err == nil {
			o.log.Info(ctx, "serving assets from persisted cache",
				"path", o.store.Path(), "entries", cached.EntryCount())
			return cached, nil
		}
		o.log.Warn(ctx, err, "persisted cache unusable, recompiling")
	} else {
		o.log.Info(ctx, "asset cache stale or missing, recompiling")
	}

	return o.compile(ctx, true, true)
}

// Build pre-warms the on-disk cache without returning data. A fresh
// cache is read and parsed only to confirm it is well-formed; a stale
// or invalid cache triggers a full recompile and persist.
func (o *Orchestrator) Build(ctx context.Context) error {
	if Fresh(ctx, o.store.Path(), o.compiler.Sources()) {
		if _, err := o.store.Load(); err == nil {
			o.log.Info(ctx, "asset cache is fresh", "path", o.store.Path())
			return nil
		} else {
			o.log.Warn(ctx, err, "fresh cache failed validation, rebuilding")
		}
	}

	_, err := o.compile(ctx, true, true)
	return err
}

func (o *Orchestrator) compile(ctx context.Context, minify, persist bool) (*types.Cache, error) {
	compiled, err := o.compiler.Compile(ctx, minify)
	if err != nil {
		return nil, fmt.Errorf("compile assets: %w", err)
	}

	if err := Encode(ctx, compiled); err != nil {
		return nil, fmt.Errorf("encode assets: %w", err)
	}

	if persist {
		if err := o.store.Persist(compiled); err != nil {
			return nil, fmt.Errorf("persist asset cache: %w", err)
		}
		o.log.Info(ctx, "asset cache written",
			"path", o.store.Path(), "entries", compiled.EntryCount())
	}

	return compiled, nil
}
