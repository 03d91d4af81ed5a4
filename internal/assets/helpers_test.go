package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/inkpad-io/inkpad/internal/logging"
	"github.com/inkpad-io/inkpad/internal/transform"
)

// writeFile writes content at root/name, creating parent directories.
func writeFile(t *testing.T, root, name, content string) {
	t.Helper()
	path := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// fixtureSources lays out a minimal but complete asset tree in a temp
// directory and returns sources bound to it.
func fixtureSources(t *testing.T) *Sources {
	t.Helper()
	root := t.TempDir()

	writeFile(t, root, "static/js/app.js", "var app = { ready: false }")
	writeFile(t, root, "static/js/boot.js", "/* inkpad-templates */\napp.ready = true")
	writeFile(t, root, "static/css/pad.css", "body { color: red; }\n.toolbar { user-select: none; }")
	writeFile(t, root, "static/css/editor.css", ".editor { padding: 0; }")
	writeFile(t, root, "static/pad.html",
		`<!DOCTYPE html>
<html>
<head><title>inkpad {type}</title></head>
<body class="pad-{type}">
<!-- @icons -->
<div id="pad"></div>
</body>
</html>`)
	writeFile(t, root, "static/icons/bold.svg", `<svg id="icon-bold"></svg>`)
	writeFile(t, root, "static/icons/link.svg", `<svg id="icon-link"></svg>`)
	writeFile(t, root, "static/templates/note.html",
		"{{!-- internal note --}}<div class=\"note\">\n  {{ body }}\n</div>")
	writeFile(t, root, "static/robots.txt", "User-agent: *\nDisallow:\n")

	writeFile(t, root, "vendor/themes/dark.css", ".cm-s-dark { background: #000; }")
	writeFile(t, root, "vendor/modes/meta.js",
		`var modeMeta = [
  {name: "Plain Text", mode: "null"},
  {name: "Markdown", mode: "markdown"},
  {name: "C-like", mode: "clike"},
  {name: "C++", mode: "clike"}
];`)
	writeFile(t, root, "vendor/modes/markdown/markdown.js", "defineMode('markdown', {})")
	writeFile(t, root, "vendor/modes/clike/clike.js", "defineMode('clike', {})")
	writeFile(t, root, "vendor/mathjs/a.js", "var a=1;")
	writeFile(t, root, "vendor/mathjs/b.js", "var b=2;")
	writeFile(t, root, "vendor/katex/katex.css",
		"@font-face { font-family: KaTeX; src: url(fonts/KaTeX-Main.woff2); }")

	m := &Manifest{
		Scripts: []string{"js/app.js", "js/boot.js"},
		Styles:  []string{"css/pad.css"},
		Static:  []string{"robots.txt"},
		Libraries: map[string][]string{
			"math.js":   {"mathjs/a.js", "mathjs/b.js"},
			"katex.css": {"katex/katex.css"},
		},
	}
	return NewSources(m, filepath.Join(root, "static"), filepath.Join(root, "vendor"))
}

// passthroughTransformer returns every input unchanged. Tests that
// assert on exact bytes use it to keep minifier behavior out of the
// assertion.
type passthroughTransformer struct{}

func (passthroughTransformer) Script(src string) (string, error) { return src, nil }
func (passthroughTransformer) Style(src string) (string, error)  { return src, nil }
func (passthroughTransformer) Markup(src string) (string, error) { return src, nil }
func (passthroughTransformer) Prefix(src string) (string, error) { return src, nil }

// fixtureCompiler builds a compiler over the fixture tree with the
// real minifier.
func fixtureCompiler(t *testing.T) *Compiler {
	t.Helper()
	c, err := NewCompiler(fixtureSources(t), transform.NewMinifier(), "test", logging.Nop())
	require.NoError(t, err)
	return c
}
