package transform

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"
)

const (
	mimeScript = "application/javascript"
	mimeStyle  = "text/css"
	mimeMarkup = "text/html"
)

// Minifier is the default Transformer backed by tdewolff/minify.
type Minifier struct {
	m *minify.M
}

var _ Transformer = (*Minifier)(nil)

// NewMinifier builds the default transformer. The HTML minifier keeps
// document structure tags and treats {{ }} fragments as opaque.
func NewMinifier() *Minifier {
	m := minify.New()
	m.AddFunc(mimeScript, js.Minify)
	m.AddFunc(mimeStyle, css.Minify)
	m.Add(mimeMarkup, &html.Minifier{
		KeepDocumentTags: true,
		KeepEndTags:      true,
		TemplateDelims:   [2]string{"{{", "}}"},
	})
	return &Minifier{m: m}
}

// Script minifies JavaScript source.
func (t *Minifier) Script(src string) (string, error) {
	out, err := t.m.String(mimeScript, src)
	if err != nil {
		return "", fmt.Errorf("script minify: %w", err)
	}
	return out, nil
}

// Style minifies CSS source.
func (t *Minifier) Style(src string) (string, error) {
	out, err := t.m.String(mimeStyle, src)
	if err != nil {
		return "", fmt.Errorf("style minify: %w", err)
	}
	return out, nil
}

// Markup minifies HTML source with template fragments left intact.
func (t *Minifier) Markup(src string) (string, error) {
	out, err := t.m.String(mimeMarkup, src)
	if err != nil {
		return "", fmt.Errorf("markup minify: %w", err)
	}
	return out, nil
}

// prefixTable lists the declarations that still need vendor-prefixed
// duplicates in the browsers inkpad supports.
var prefixTable = []struct {
	property string
	prefixes []string
}{
	{"user-select", []string{"-webkit-", "-moz-"}},
	{"appearance", []string{"-webkit-", "-moz-"}},
	{"backdrop-filter", []string{"-webkit-"}},
	{"text-size-adjust", []string{"-webkit-", "-moz-"}},
	{"tab-size", []string{"-moz-"}},
}

var prefixPatterns = buildPrefixPatterns()

type prefixPattern struct {
	re          *regexp.Regexp
	replacement string
}

func buildPrefixPatterns() []prefixPattern {
	patterns := make([]prefixPattern, 0, len(prefixTable))
	for _, row := range prefixTable {
		// Matches the declaration only when it starts directly
		// after a block opener or separator, so already-prefixed
		// copies never match again.
		re := regexp.MustCompile(`([{;]\s*)(` + regexp.QuoteMeta(row.property) + `\s*:\s*[^;}]+)`)
		var b strings.Builder
		b.WriteString("$1")
		for _, p := range row.prefixes {
			b.WriteString(p)
			b.WriteString("$2;")
		}
		b.WriteString("$2")
		patterns = append(patterns, prefixPattern{re: re, replacement: b.String()})
	}
	return patterns
}

// Prefix duplicates known declarations with their vendor-prefixed
// forms. Unknown properties pass through untouched.
func (t *Minifier) Prefix(cssSrc string) (string, error) {
	out := cssSrc
	for _, p := range prefixPatterns {
		out = p.re.ReplaceAllString(out, p.replacement)
	}
	return out, nil
}
