// Package assets compiles the inkpad client assets: the main script
// and style bundles, the editor markup variants, the theme and
// language-mode sets, and the on-demand libraries. Each compiler is a
// pure function of the source file set and an explicit minify flag,
// producing named raw outputs that the build package encodes and
// persists.
package assets

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Manifest is the declared source file set: the ordered script and
// style lists, the miscellaneous pass-through files, and the
// on-demand library table mapping an output bundle name to the source
// files concatenated into it. Loaded once per run and immutable
// afterwards.
type Manifest struct {
	Scripts   []string            `yaml:"scripts"`
	Styles    []string            `yaml:"styles"`
	Static    []string            `yaml:"static"`
	Libraries map[string][]string `yaml:"libraries"`
}

// LoadManifest reads and parses the asset manifest at path.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read asset manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse asset manifest %s: %w", path, err)
	}

	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("asset manifest %s: %w", path, err)
	}

	return &m, nil
}

func (m *Manifest) validate() error {
	for _, s := range m.Scripts {
		if s == "" {
			return fmt.Errorf("empty script entry")
		}
	}
	for _, s := range m.Styles {
		if s == "" {
			return fmt.Errorf("empty style entry")
		}
	}
	for name, files := range m.Libraries {
		if name == "" {
			return fmt.Errorf("library with empty output name")
		}
		if len(files) == 0 {
			return fmt.Errorf("library %s maps to no source files", name)
		}
	}
	return nil
}

// Sources binds a manifest to the two on-disk trees its file names
// resolve against.
type Sources struct {
	Manifest *Manifest

	// StaticDir is the project-local asset tree, preferred during
	// resolution.
	StaticDir string

	// VendorDir is the third-party tree used when a file is not
	// present under StaticDir.
	VendorDir string
}

// NewSources binds a manifest to its asset trees.
func NewSources(m *Manifest, staticDir, vendorDir string) *Sources {
	return &Sources{Manifest: m, StaticDir: staticDir, VendorDir: vendorDir}
}

// Resolve maps a manifest file name to its concrete on-disk path. The
// project-local tree wins when the file exists there; otherwise the
// vendor tree location is returned. The check runs on every call so a
// file appearing in or vanishing from the static tree takes effect on
// the next stat, never a cached decision.
func (s *Sources) Resolve(name string) string {
	local := filepath.Join(s.StaticDir, name)
	if _, err := os.Stat(local); err == nil {
		return local
	}
	return filepath.Join(s.VendorDir, name)
}

// ReadFile resolves name and reads its content.
func (s *Sources) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(s.Resolve(name))
}

// Tracked returns every logical file whose modification time gates
// cache freshness: scripts, styles, miscellaneous files, and all
// resolved library sources.
func (s *Sources) Tracked() []string {
	var tracked []string
	tracked = append(tracked, s.Manifest.Scripts...)
	tracked = append(tracked, s.Manifest.Styles...)
	tracked = append(tracked, s.Manifest.Static...)
	for _, files := range s.Manifest.Libraries {
		tracked = append(tracked, files...)
	}
	return tracked
}

// TemplatesDir holds the client-side markup templates precompiled
// into the script bundle.
func (s *Sources) TemplatesDir() string {
	return filepath.Join(s.StaticDir, "templates")
}

// IconsDir holds the SVG icons inlined into the editor markup.
func (s *Sources) IconsDir() string {
	return filepath.Join(s.StaticDir, "icons")
}

// MarkupTemplate is the single HTML page template the markup variants
// derive from.
func (s *Sources) MarkupTemplate() string {
	return filepath.Join(s.StaticDir, "pad.html")
}

// BuiltinTheme is the theme stylesheet shipped with inkpad itself, in
// addition to the vendor theme directory.
func (s *Sources) BuiltinTheme() string {
	return filepath.Join(s.StaticDir, "css", "editor.css")
}

// ThemesDir holds the vendored editor theme stylesheets.
func (s *Sources) ThemesDir() string {
	return filepath.Join(s.VendorDir, "themes")
}

// ModesDir holds the vendored language-mode scripts.
func (s *Sources) ModesDir() string {
	return filepath.Join(s.VendorDir, "modes")
}

// ModesMeta is the metadata script declaring the supported language
// modes.
func (s *Sources) ModesMeta() string {
	return filepath.Join(s.ModesDir(), "meta.js")
}
