// Package transform defines the external transform contract consumed
// by the asset compilers, plus the default minifier-backed adapter.
//
// The pipeline itself never implements minification or prefixing
// algorithms; it only requires that some Transformer is injected at
// construction time. A missing transformer is a construction-time
// error, never a silent runtime fallback.
package transform

// Transformer is the capability port for the per-asset-kind text
// transforms the compilers depend on. Every method is text in, text
// out; implementations must be deterministic for identical input.
type Transformer interface {
	// Script minifies JavaScript source.
	Script(src string) (string, error)

	// Style minifies CSS source.
	Style(src string) (string, error)

	// Markup minifies HTML while treating double-brace template
	// fragments as opaque: a fragment must never be collapsed,
	// quoted across, or otherwise rewritten.
	Markup(src string) (string, error)

	// Prefix applies vendor prefixes to CSS declarations. It runs
	// before Style so prefixed copies are minified together with
	// the original declarations.
	Prefix(css string) (string, error)
}
