package assets

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileStatic(t *testing.T) {
	src := fixtureSources(t)
	writeFile(t, src.StaticDir, "misc/favicon.ico", "icon-bytes")
	src.Manifest.Static = []string{"robots.txt", "misc/favicon.ico"}

	c, err := NewCompiler(src, passthroughTransformer{}, "test", nil)
	require.NoError(t, err)

	out, err := c.compileStatic(context.Background())
	require.NoError(t, err)

	t.Run("keyed by base name", func(t *testing.T) {
		require.Len(t, out, 2)
		assert.Contains(t, out, "robots.txt")
		assert.Contains(t, out, "favicon.ico")
	})

	t.Run("bytes pass through unchanged", func(t *testing.T) {
		assert.Equal(t, "User-agent: *\nDisallow:\n", string(out["robots.txt"].Data))
		assert.Equal(t, "icon-bytes", string(out["favicon.ico"].Data))
	})
}
