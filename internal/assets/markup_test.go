package assets

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileMarkup(t *testing.T) {
	c := fixtureCompiler(t)

	out, err := c.compileMarkup(context.Background(), false)
	require.NoError(t, err)

	t.Run("one entry per variant", func(t *testing.T) {
		require.Len(t, out, 3)
		for _, name := range []string{"pad.edit.html", "pad.view.html", "pad.both.html"} {
			assert.Contains(t, out, name)
		}
	})

	t.Run("variant substitution", func(t *testing.T) {
		edit := string(out["pad.edit.html"].Data)
		assert.Contains(t, edit, "inkpad edit")
		assert.Contains(t, edit, `class="pad-edit"`)
		assert.NotContains(t, edit, typePlaceholder)

		view := string(out["pad.view.html"].Data)
		assert.Contains(t, view, `class="pad-view"`)
	})

	t.Run("icons are inlined once in sorted order", func(t *testing.T) {
		page := string(out["pad.both.html"].Data)
		assert.NotContains(t, page, iconsPlaceholder)
		assert.Equal(t, 1, strings.Count(page, `<div class="inline-icons" hidden>`))

		bold := strings.Index(page, "icon-bold")
		link := strings.Index(page, "icon-link")
		require.NotEqual(t, -1, bold)
		require.NotEqual(t, -1, link)
		assert.Less(t, bold, link)
	})
}

func TestCompileMarkup_Minified(t *testing.T) {
	c := fixtureCompiler(t)

	out, err := c.compileMarkup(context.Background(), true)
	require.NoError(t, err)

	edit := string(out["pad.edit.html"].Data)
	assert.Contains(t, edit, "<html>")
	assert.Contains(t, edit, "<body")
	assert.NotContains(t, edit, "\n<head>")
}
