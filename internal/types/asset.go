// Package types defines the shared data model for the inkpad asset
// pipeline: compiled entries, the compiled cache that groups them, and
// the meta record stamped into the persisted cache file.
package types

// Entry is one named, fully-encoded unit of servable content. After a
// successful build every field is populated: Data holds the compiled
// bytes, Validator is a deterministic token derived from Data alone,
// MimeType classifies the entry for the Content-Type header, and Gzip
// and Brotli hold the two pre-computed compressed representations used
// for Content-Encoding negotiation.
type Entry struct {
	Data      []byte `cbor:"data"`
	Validator string `cbor:"validator"`
	MimeType  string `cbor:"mime"`
	Gzip      []byte `cbor:"gzip"`
	Brotli    []byte `cbor:"brotli"`
}

// Meta is the version stamp persisted alongside the compiled entries.
// It is deliberately a distinct type from Entry: the meta record never
// carries content or encodings, so modelling it as an entry with empty
// fields would force field-presence checks everywhere.
type Meta struct {
	Version string `cbor:"version"`
}

// Cache is the full compiled output of one build: the main resource
// bundles, the theme stylesheets, the language-mode scripts, and the
// on-demand libraries. Keys are stable output filenames (or mode ids
// for the mode group); insertion order is irrelevant.
type Cache struct {
	Resources map[string]*Entry `cbor:"resources"`
	Themes    map[string]*Entry `cbor:"themes"`
	Modes     map[string]*Entry `cbor:"modes"`
	Libs      map[string]*Entry `cbor:"libs"`
	Meta      Meta              `cbor:"meta"`
}

// NewCache returns an empty cache stamped with the given version.
func NewCache(version string) *Cache {
	return &Cache{
		Resources: make(map[string]*Entry),
		Themes:    make(map[string]*Entry),
		Modes:     make(map[string]*Entry),
		Libs:      make(map[string]*Entry),
		Meta:      Meta{Version: version},
	}
}

// Groups returns the entry groups keyed by group name. The meta record
// is not a group; it never participates in encoding.
func (c *Cache) Groups() map[string]map[string]*Entry {
	return map[string]map[string]*Entry{
		"resources": c.Resources,
		"themes":    c.Themes,
		"modes":     c.Modes,
		"libs":      c.Libs,
	}
}

// EntryCount returns the total number of entries across all groups.
func (c *Cache) EntryCount() int {
	return len(c.Resources) + len(c.Themes) + len(c.Modes) + len(c.Libs)
}

// TotalSize returns the summed size in bytes of all raw entry data.
func (c *Cache) TotalSize() int64 {
	var n int64
	for _, group := range c.Groups() {
		for _, e := range group {
			n += int64(len(e.Data))
		}
	}
	return n
}
