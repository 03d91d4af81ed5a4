// Package cache persists the compiled asset cache to a single file
// and loads it back, degrading gracefully: an unreadable or
// unparseable file is reported as absent or corrupt so the caller can
// rebuild, never as a fatal condition.
package cache

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fxamacker/cbor/v2"

	"github.com/inkpad-io/inkpad/internal/types"
)

var (
	// ErrCacheAbsent reports that no usable cache file could be
	// read. The caller recovers by compiling from sources.
	ErrCacheAbsent = errors.New("asset cache absent")

	// ErrCacheCorrupt reports that the cache file was read but its
	// content could not be trusted. Recovery is identical to
	// ErrCacheAbsent; the distinction exists for logging.
	ErrCacheCorrupt = errors.New("asset cache corrupt")
)

// encMode is the CBOR encoder configured with Core Deterministic
// Encoding: sorted map keys, smallest integer encoding, no
// indefinite-length items. The same compiled cache always serializes
// to identical bytes.
var encMode cbor.EncMode

// decMode accepts standard CBOR; unknown fields are ignored for
// forward compatibility.
var decMode cbor.DecMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("cache: CBOR encoder initialization failed: " + err.Error())
	}
	decMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("cache: CBOR decoder initialization failed: " + err.Error())
	}
}

// Store reads and writes the compiled cache file at a fixed path.
type Store struct {
	path    string
	version string
}

// NewStore creates a store for the cache file at path. Loaded caches
// whose meta version differs from version are rejected as corrupt.
func NewStore(path, version string) *Store {
	return &Store{path: path, version: version}
}

// Path returns the cache file location.
func (s *Store) Path() string {
	return s.path
}

// Persist serializes the full cache, raw byte payloads included, and
// atomically replaces any existing cache file. The write goes to a
// temp file in the target directory first and is renamed into place,
// so a concurrent reader observes either the old complete file or the
// new complete file, never a truncated one.
func (s *Store) Persist(c *types.Cache) error {
	data, err := encMode.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode asset cache: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create cache directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".assets-*.tmp")
	if err != nil {
		return fmt.Errorf("create cache temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write cache temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close cache temp file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace cache file: %w", err)
	}
	return nil
}

// Load reads and deserializes the cache file. A read failure yields
// ErrCacheAbsent; a deserialization failure or version mismatch
// yields ErrCacheCorrupt. Load never modifies the file.
func (s *Store) Load() (*types.Cache, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCacheAbsent, err)
	}

	var c types.Cache
	if err := decMode.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCacheCorrupt, err)
	}

	if c.Meta.Version != s.version {
		return nil, fmt.Errorf("%w: cache version %q, pipeline version %q",
			ErrCacheCorrupt, c.Meta.Version, s.version)
	}

	return &c, nil
}

// Remove deletes the cache file. A missing file is not an error.
func (s *Store) Remove() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove cache file: %w", err)
	}
	return nil
}
