package assets

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/inkpad-io/inkpad/internal/types"
)

// nullMode is the sentinel descriptor for plain text; it has no mode
// script to bundle.
const nullMode = "null"

// modeIDPattern pulls the mode id out of each descriptor in the
// metadata script. The metadata is a plain declaration list, so the
// ids are extracted declaratively here instead of evaluating the
// script: no interpreter runs, and the metadata file gets no ambient
// capability of any kind.
var modeIDPattern = regexp.MustCompile(`\bmode\s*:\s*["']([^"']+)["']`)

// parseModeMeta returns the mode ids declared in the metadata script,
// in declaration order, with duplicates and the null sentinel dropped.
func parseModeMeta(src []byte) []string {
	seen := make(map[string]bool)
	var ids []string
	for _, m := range modeIDPattern.FindAllSubmatch(src, -1) {
		id := string(m[1])
		if id == nullMode || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}

// compileModes reads the mode metadata script and produces one script
// entry per declared language mode, keyed by mode id.
func (c *Compiler) compileModes(ctx context.Context, minify bool) (map[string]*types.Entry, error) {
	meta, err := os.ReadFile(c.src.ModesMeta())
	if err != nil {
		return nil, fmt.Errorf("mode metadata: %w", err)
	}

	ids := parseModeMeta(meta)
	out := make(map[string]*types.Entry, len(ids))
	for _, id := range ids {
		path := filepath.Join(c.src.ModesDir(), id, id+".js")
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("mode %s: %w", id, err)
		}

		body := string(data)
		if minify {
			body, err = c.tf.Script(body)
			if err != nil {
				return nil, fmt.Errorf("mode %s: %w", id, err)
			}
		}
		out[id] = &types.Entry{Data: []byte(body)}
	}
	return out, nil
}
