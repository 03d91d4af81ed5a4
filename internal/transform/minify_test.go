package transform

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinifier_Script(t *testing.T) {
	tf := NewMinifier()

	t.Run("removes insignificant whitespace", func(t *testing.T) {
		out, err := tf.Script("var answer = 1 + 2 ;\n\nvar other = answer ;")
		require.NoError(t, err)
		assert.NotContains(t, out, "\n\n")
		assert.Less(t, len(out), len("var answer = 1 + 2 ;\n\nvar other = answer ;"))
	})

	t.Run("empty input stays empty", func(t *testing.T) {
		out, err := tf.Script("")
		require.NoError(t, err)
		assert.Empty(t, out)
	})
}

func TestMinifier_Style(t *testing.T) {
	tf := NewMinifier()

	out, err := tf.Style("body { color: red; }")
	require.NoError(t, err)
	assert.Equal(t, "body{color:red}", out)
}

func TestMinifier_Markup(t *testing.T) {
	tf := NewMinifier()

	t.Run("keeps document tags", func(t *testing.T) {
		out, err := tf.Markup("<html>\n<body>\n  <p>hi</p>\n</body>\n</html>")
		require.NoError(t, err)
		assert.Contains(t, out, "<html>")
		assert.Contains(t, out, "<body>")
	})

	t.Run("template fragments survive untouched", func(t *testing.T) {
		src := `<div title="{{ pad.title }}">{{ body }}</div>`
		out, err := tf.Markup(src)
		require.NoError(t, err)
		assert.Contains(t, out, "{{ pad.title }}")
		assert.Contains(t, out, "{{ body }}")
	})
}

func TestMinifier_Prefix(t *testing.T) {
	tf := NewMinifier()

	t.Run("known property gains prefixed copies", func(t *testing.T) {
		out, err := tf.Prefix(".toolbar { user-select: none; }")
		require.NoError(t, err)
		assert.Contains(t, out, "-webkit-user-select: none")
		assert.Contains(t, out, "-moz-user-select: none")
		assert.Contains(t, out, "user-select: none")
	})

	t.Run("unknown property passes through", func(t *testing.T) {
		src := ".toolbar { color: blue; }"
		out, err := tf.Prefix(src)
		require.NoError(t, err)
		assert.Equal(t, src, out)
	})

	t.Run("prefixed copies are not prefixed again", func(t *testing.T) {
		out, err := tf.Prefix(".a { tab-size: 4; }")
		require.NoError(t, err)
		assert.Equal(t, 1, strings.Count(out, "-moz-tab-size"))
		assert.NotContains(t, out, "-moz--moz-")
	})
}
