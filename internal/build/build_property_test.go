//go:build property
// +build property

package build

import (
	"bytes"
	"context"
	"io"
	"regexp"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/inkpad-io/inkpad/internal/types"
)

var validatorPattern = regexp.MustCompile(`^[0-9a-f]{16}$`)

// TestValidatorProperties tests content validator invariants
func TestValidatorProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	// Property: validators are deterministic for identical content
	properties.Property("validator determinism", prop.ForAll(
		func(data []byte) bool {
			return Validator(data) == Validator(data)
		},
		gen.SliceOf(gen.UInt8()),
	))

	// Property: validators are always 16 lowercase hex characters
	properties.Property("validator shape", prop.ForAll(
		func(data []byte) bool {
			return validatorPattern.MatchString(Validator(data))
		},
		gen.SliceOf(gen.UInt8()),
	))

	properties.TestingRun(t)
}

// TestEncodeProperties tests the encoding stage invariants
func TestEncodeProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	// Property: gzip encoding round-trips for arbitrary content
	properties.Property("gzip round trip", prop.ForAll(
		func(data []byte) bool {
			cache := types.NewCache("prop")
			cache.Resources["blob"] = &types.Entry{Data: data}
			if err := Encode(context.Background(), cache); err != nil {
				return false
			}

			gr, err := gzip.NewReader(bytes.NewReader(cache.Resources["blob"].Gzip))
			if err != nil {
				return false
			}
			out, err := io.ReadAll(gr)
			if err != nil {
				return false
			}
			return bytes.Equal(out, data)
		},
		gen.SliceOf(gen.UInt8()),
	))

	// Property: encoding never alters the raw data
	properties.Property("data is immutable under encoding", prop.ForAll(
		func(data []byte) bool {
			orig := append([]byte(nil), data...)
			cache := types.NewCache("prop")
			cache.Resources["blob"] = &types.Entry{Data: data}
			if err := Encode(context.Background(), cache); err != nil {
				return false
			}
			return bytes.Equal(cache.Resources["blob"].Data, orig)
		},
		gen.SliceOf(gen.UInt8()),
	))

	properties.TestingRun(t)
}
