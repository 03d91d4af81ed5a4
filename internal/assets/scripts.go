package assets

import (
	"context"
	"fmt"
	"strings"

	"github.com/inkpad-io/inkpad/internal/types"
)

// ScriptBundle is the output name of the main script bundle.
const ScriptBundle = "pad.js"

// templatePlaceholder is the reserved token inside the script sources
// that is replaced with the precompiled template registry. Exactly one
// of the configured script files is expected to carry it.
const templatePlaceholder = "/* inkpad-templates */"

// compileScripts concatenates the configured script files in declared
// order, substitutes the template registry for the reserved
// placeholder, and minifies the result when requested.
func (c *Compiler) compileScripts(ctx context.Context, minify bool) (map[string]*types.Entry, error) {
	var b strings.Builder
	for _, name := range c.src.Manifest.Scripts {
		data, err := c.src.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("script source %s: %w", name, err)
		}
		b.Write(data)
		// Terminate every file so a trailing expression in one
		// source cannot swallow the first statement of the next.
		b.WriteString(";\n")
	}

	registry, err := c.precompileTemplates()
	if err != nil {
		return nil, err
	}

	bundle := strings.Replace(b.String(), templatePlaceholder, registry, 1)

	if minify {
		bundle, err = c.tf.Script(bundle)
		if err != nil {
			return nil, fmt.Errorf("bundle %s: %w", ScriptBundle, err)
		}
	}

	return map[string]*types.Entry{
		ScriptBundle: {Data: []byte(bundle)},
	}, nil
}
