package build

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"path/filepath"

	"github.com/andybalholm/brotli"
	"github.com/cespare/xxhash/v2"
	"github.com/klauspost/compress/gzip"
	"golang.org/x/sync/errgroup"

	"github.com/inkpad-io/inkpad/internal/types"
)

// Encode post-processes every compiled entry into its full served
// representation: the content validator, the MIME classification, and
// both compressed encodings at maximum quality. Entries across all
// groups are encoded concurrently; Encode returns only when every
// encoding has resolved. The meta record is not an entry and is never
// touched.
func Encode(ctx context.Context, cache *types.Cache) error {
	g, _ := errgroup.WithContext(ctx)

	for groupName, group := range cache.Groups() {
		for name, entry := range group {
			g.Go(func() error {
				entry.Validator = Validator(entry.Data)
				entry.MimeType = MimeFor(groupName, name)
				return nil
			})
			g.Go(func() error {
				var err error
				entry.Gzip, err = gzipBytes(entry.Data)
				if err != nil {
					return fmt.Errorf("gzip %s: %w", name, err)
				}
				return nil
			})
			g.Go(func() error {
				var err error
				entry.Brotli, err = brotliBytes(entry.Data)
				if err != nil {
					return fmt.Errorf("brotli %s: %w", name, err)
				}
				return nil
			})
		}
	}

	return g.Wait()
}

// Validator derives the conditional-GET token from content bytes.
// Identical bytes always produce an identical validator.
func Validator(data []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}

// MimeFor classifies an entry for the Content-Type header. Two groups
// carry extension-less keys and classify by what the group holds:
// themes are stylesheets keyed by theme name, modes are scripts keyed
// by bare mode id. Everything else classifies by extension.
func MimeFor(group, name string) string {
	switch group {
	case "themes":
		return "text/css"
	case "modes":
		return "application/javascript"
	}
	switch ext := filepath.Ext(name); ext {
	case ".js":
		return "application/javascript"
	case ".css":
		return "text/css"
	case ".html":
		return "text/html"
	default:
		if t := mime.TypeByExtension(ext); t != "" {
			return t
		}
		return "application/octet-stream"
	}
}

func gzipBytes(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := gzip.NewWriterLevel(&buf, gzip.BestCompression)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func brotliBytes(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := brotli.NewWriterLevel(&buf, brotli.BestCompression)
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
