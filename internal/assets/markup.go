package assets

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/inkpad-io/inkpad/internal/types"
)

// iconsPlaceholder marks where the inline icon block is injected into
// the page template.
const iconsPlaceholder = "<!-- @icons -->"

// typePlaceholder is substituted with each variant name to derive the
// three served pages from the single template.
const typePlaceholder = "{type}"

// markupVariants are the three page flavors served by the editor.
var markupVariants = [...]string{"edit", "view", "both"}

// compileMarkup loads the page template, injects the inline icon
// block, and produces one independently minified entry per variant.
func (c *Compiler) compileMarkup(ctx context.Context, minify bool) (map[string]*types.Entry, error) {
	data, err := os.ReadFile(c.src.MarkupTemplate())
	if err != nil {
		return nil, fmt.Errorf("markup template: %w", err)
	}

	icons, err := c.renderIcons()
	if err != nil {
		return nil, err
	}
	page := strings.Replace(string(data), iconsPlaceholder, icons, 1)

	out := make(map[string]*types.Entry, len(markupVariants))
	for _, variant := range markupVariants {
		body := strings.ReplaceAll(page, typePlaceholder, variant)
		if minify {
			body, err = c.tf.Markup(body)
			if err != nil {
				return nil, fmt.Errorf("markup variant %s: %w", variant, err)
			}
		}
		out[fmt.Sprintf("pad.%s.html", variant)] = &types.Entry{Data: []byte(body)}
	}
	return out, nil
}

// renderIcons concatenates every SVG in the icons directory into one
// hidden block. Directory read order is name-sorted, keeping the
// rendered block deterministic.
func (c *Compiler) renderIcons() (string, error) {
	dir := c.src.IconsDir()
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("icons dir: %w", err)
	}

	var b strings.Builder
	b.WriteString(`<div class="inline-icons" hidden>`)
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".svg" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return "", fmt.Errorf("icon %s: %w", e.Name(), err)
		}
		b.Write(data)
	}
	b.WriteString(`</div>`)
	return b.String(), nil
}
