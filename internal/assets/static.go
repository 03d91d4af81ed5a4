package assets

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/inkpad-io/inkpad/internal/types"
)

// compileStatic passes the miscellaneous files through byte-for-byte,
// keyed by filename.
func (c *Compiler) compileStatic(ctx context.Context) (map[string]*types.Entry, error) {
	out := make(map[string]*types.Entry, len(c.src.Manifest.Static))
	for _, name := range c.src.Manifest.Static {
		data, err := c.src.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("static file %s: %w", name, err)
		}
		out[filepath.Base(name)] = &types.Entry{Data: data}
	}
	return out, nil
}
