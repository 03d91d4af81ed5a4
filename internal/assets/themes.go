package assets

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/inkpad-io/inkpad/internal/types"
)

// compileThemes produces one style entry per theme stylesheet: every
// CSS file in the vendor themes directory plus the built-in editor
// theme. Entries are keyed by filename with the extension stripped.
// The built-in theme is added last and wins a name collision with a
// vendored file.
func (c *Compiler) compileThemes(ctx context.Context, minify bool) (map[string]*types.Entry, error) {
	dir := c.src.ThemesDir()
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("themes dir: %w", err)
	}

	out := make(map[string]*types.Entry, len(entries)+1)
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".css" {
			continue
		}
		if err := c.addTheme(out, filepath.Join(dir, e.Name()), minify); err != nil {
			return nil, err
		}
	}

	if err := c.addTheme(out, c.src.BuiltinTheme(), minify); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *Compiler) addTheme(out map[string]*types.Entry, path string, minify bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("theme %s: %w", filepath.Base(path), err)
	}

	body := string(data)
	if minify {
		body, err = c.tf.Style(body)
		if err != nil {
			return fmt.Errorf("theme %s: %w", filepath.Base(path), err)
		}
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	out[name] = &types.Entry{Data: []byte(body)}
	return nil
}
