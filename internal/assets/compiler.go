package assets

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/inkpad-io/inkpad/internal/logging"
	"github.com/inkpad-io/inkpad/internal/transform"
	"github.com/inkpad-io/inkpad/internal/types"
)

// Compiler drives the per-asset-family compilers against one source
// file set. The transformer is a mandatory collaborator: compilation
// is all-or-nothing, so a missing transform capability is rejected at
// construction time rather than discovered halfway through a build.
type Compiler struct {
	src     *Sources
	tf      transform.Transformer
	version string
	log     *logging.Logger
}

// NewCompiler creates a compiler for the given sources. It returns an
// error when sources or transformer are absent.
func NewCompiler(src *Sources, tf transform.Transformer, version string, log *logging.Logger) (*Compiler, error) {
	if src == nil {
		return nil, fmt.Errorf("assets: no sources configured")
	}
	if tf == nil {
		return nil, fmt.Errorf("assets: no transformer configured; the pipeline requires script, style, and markup transforms to produce honest bundles")
	}
	if log == nil {
		log = logging.Nop()
	}
	return &Compiler{src: src, tf: tf, version: version, log: log}, nil
}

// Sources returns the source file set the compiler reads from.
func (c *Compiler) Sources() *Sources {
	return c.src
}

// Compile produces the full compiled cache: all asset families are
// compiled concurrently since they are independent, while the file
// order inside each family is preserved exactly. The returned cache
// carries raw data only; validators, MIME types, and compressed
// encodings are filled in by the encoding stage. Any failure aborts
// the whole build: a cache is never partially produced.
func (c *Compiler) Compile(ctx context.Context, minify bool) (*types.Cache, error) {
	g, ctx := errgroup.WithContext(ctx)

	var (
		scripts, styles, markup, static map[string]*types.Entry
		themes, modes, libs             map[string]*types.Entry
	)

	g.Go(func() error {
		var err error
		scripts, err = c.compileScripts(ctx, minify)
		return err
	})
	g.Go(func() error {
		var err error
		styles, err = c.compileStyles(ctx, minify)
		return err
	})
	g.Go(func() error {
		var err error
		markup, err = c.compileMarkup(ctx, minify)
		return err
	})
	g.Go(func() error {
		var err error
		static, err = c.compileStatic(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		themes, err = c.compileThemes(ctx, minify)
		return err
	})
	g.Go(func() error {
		var err error
		modes, err = c.compileModes(ctx, minify)
		return err
	})
	g.Go(func() error {
		var err error
		libs, err = c.compileLibs(ctx, minify)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	cache := types.NewCache(c.version)
	for _, group := range []map[string]*types.Entry{scripts, styles, markup, static} {
		for name, entry := range group {
			cache.Resources[name] = entry
		}
	}
	cache.Themes = themes
	cache.Modes = modes
	cache.Libs = libs

	c.log.Debug(ctx, "asset compilation complete",
		"resources", len(cache.Resources),
		"themes", len(cache.Themes),
		"modes", len(cache.Modes),
		"libs", len(cache.Libs),
		"minify", minify)

	return cache, nil
}
