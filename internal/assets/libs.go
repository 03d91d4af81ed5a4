package assets

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/inkpad-io/inkpad/internal/types"
)

// LibraryPrefix is the URL prefix the server mounts the on-demand
// library bundles under. Keys of the libs group are served directly
// beneath it.
const LibraryPrefix = "/library/"

// rewrittenBundle is the one library whose relative font URLs are
// pinned to LibraryPrefix. The stylesheet references its font files
// with url(fonts/...) paths that would otherwise resolve against the
// page URL instead of the library mount; the rewrite is a fixed
// string substitution, not general URL resolution.
const rewrittenBundle = "katex.css"

// compileLibs concatenates each library's source files in declared
// order. When minifying, each bundle is transformed according to its
// extension-implied type; other extensions pass through unmodified.
func (c *Compiler) compileLibs(ctx context.Context, minify bool) (map[string]*types.Entry, error) {
	names := make([]string, 0, len(c.src.Manifest.Libraries))
	for name := range c.src.Manifest.Libraries {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make(map[string]*types.Entry, len(names))
	for _, name := range names {
		var buf bytes.Buffer
		for _, file := range c.src.Manifest.Libraries[name] {
			data, err := c.src.ReadFile(file)
			if err != nil {
				return nil, fmt.Errorf("library %s source %s: %w", name, file, err)
			}
			buf.Write(data)
		}

		data := buf.Bytes()
		if name == rewrittenBundle {
			data = bytes.ReplaceAll(data,
				[]byte("url(fonts/"),
				[]byte("url("+LibraryPrefix+"fonts/"))
		}

		if minify {
			body, err := c.minifyByExt(name, string(data))
			if err != nil {
				return nil, fmt.Errorf("library %s: %w", name, err)
			}
			data = []byte(body)
		}

		out[name] = &types.Entry{Data: data}
	}
	return out, nil
}

func (c *Compiler) minifyByExt(name, body string) (string, error) {
	switch filepath.Ext(name) {
	case ".js":
		return c.tf.Script(body)
	case ".css":
		return c.tf.Style(body)
	default:
		return body, nil
	}
}
