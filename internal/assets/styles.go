package assets

import (
	"context"
	"fmt"
	"strings"

	"github.com/inkpad-io/inkpad/internal/types"
)

// StyleBundle is the output name of the main stylesheet bundle.
const StyleBundle = "pad.css"

// compileStyles concatenates the configured stylesheets in declared
// order, applies vendor prefixing, and minifies when requested.
func (c *Compiler) compileStyles(ctx context.Context, minify bool) (map[string]*types.Entry, error) {
	var b strings.Builder
	for _, name := range c.src.Manifest.Styles {
		data, err := c.src.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("style source %s: %w", name, err)
		}
		b.Write(data)
		b.WriteString("\n")
	}

	bundle, err := c.tf.Prefix(b.String())
	if err != nil {
		return nil, fmt.Errorf("bundle %s: %w", StyleBundle, err)
	}

	if minify {
		bundle, err = c.tf.Style(bundle)
		if err != nil {
			return nil, fmt.Errorf("bundle %s: %w", StyleBundle, err)
		}
	}

	return map[string]*types.Entry{
		StyleBundle: {Data: []byte(bundle)},
	}, nil
}
