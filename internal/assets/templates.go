package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// templateRegistry is the name of the global object the precompiled
// templates are published under.
const templateRegistry = "inkpadTemplates"

var (
	// fragmentPattern matches one double-brace template fragment.
	fragmentPattern = regexp.MustCompile(`\{\{[\s\S]*?\}\}`)

	// commentFragmentPatterns match the two comment forms:
	// {{!-- block --}} first, then the short {{! inline }} form.
	commentFragmentPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\{\{!--[\s\S]*?--\}\}`),
		regexp.MustCompile(`\{\{![^}]*\}\}`),
	}

	innerSpacePattern = regexp.MustCompile(`\s+`)
)

// precompileTemplates reads every template in the templates directory
// and emits one script fragment registering them all: an IIFE that
// builds a registry keyed by template name (filename minus extension)
// and publishes it as a global. The fragment replaces the reserved
// placeholder in the script bundle.
func (c *Compiler) precompileTemplates() (string, error) {
	dir := c.src.TemplatesDir()
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("templates dir: %w", err)
	}

	var b strings.Builder
	b.WriteString("(function(){var registry={};\n")
	// ReadDir sorts by name, so registration order is stable.
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".html" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return "", fmt.Errorf("template %s: %w", e.Name(), err)
		}

		body, err := c.precompileTemplate(string(data))
		if err != nil {
			return "", fmt.Errorf("template %s: %w", e.Name(), err)
		}

		name := strings.TrimSuffix(e.Name(), ".html")
		fmt.Fprintf(&b, "registry[%q]=%q;\n", name, body)
	}
	b.WriteString("window." + templateRegistry + "=registry;})();")
	return b.String(), nil
}

// precompileTemplate minifies one template. Comment fragments are
// dropped entirely; the remaining fragments pass through the markup
// minifier as opaque tokens and then have their internal whitespace
// collapsed, the expression kept single-space padded inside the
// delimiters.
func (c *Compiler) precompileTemplate(src string) (string, error) {
	for _, p := range commentFragmentPatterns {
		src = p.ReplaceAllString(src, "")
	}

	out, err := c.tf.Markup(src)
	if err != nil {
		return "", err
	}

	out = fragmentPattern.ReplaceAllStringFunc(out, func(frag string) string {
		inner := strings.TrimSpace(frag[2 : len(frag)-2])
		if inner == "" {
			return "{{}}"
		}
		return "{{ " + innerSpacePattern.ReplaceAllString(inner, " ") + " }}"
	})
	return out, nil
}
