// Package build orchestrates the asset pipeline: freshness checking
// against source modification times, compilation of every asset
// family, the encoding stage, and cache persistence.
package build

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/inkpad-io/inkpad/internal/assets"
)

// Fresh reports whether the persisted cache at cachePath is at least
// as new as every tracked source file. Every tracked file is resolved
// and stat'd concurrently; the cache is fresh iff its modification
// time is not older than the newest source. Any stat failure means
// freshness cannot be confirmed and reports stale: the failure mode
// is an unnecessary rebuild, never a silently served stale bundle.
func Fresh(ctx context.Context, cachePath string, src *assets.Sources) bool {
	info, err := os.Stat(cachePath)
	if err != nil {
		return false
	}
	cacheTime := info.ModTime()

	newest, err := newestSourceTime(ctx, src)
	if err != nil {
		return false
	}
	return !cacheTime.Before(newest)
}

// newestSourceTime stats every tracked file in parallel and returns
// the maximum modification time. Resolution happens immediately
// before each stat so a file that moved between the static and vendor
// trees is observed at its current location.
func newestSourceTime(ctx context.Context, src *assets.Sources) (time.Time, error) {
	g, _ := errgroup.WithContext(ctx)

	var (
		mu     sync.Mutex
		newest time.Time
	)
	for _, name := range src.Tracked() {
		g.Go(func() error {
			info, err := os.Stat(src.Resolve(name))
			if err != nil {
				return fmt.Errorf("stat tracked file %s: %w", name, err)
			}
			mu.Lock()
			if info.ModTime().After(newest) {
				newest = info.ModTime()
			}
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return time.Time{}, err
	}
	return newest, nil
}
