// Package loader reads schematic files into memory for the analysis core.
package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/vk/partscan/internal/ctxlog"
)

// ZstdExtension marks a schematic stored zstd-compressed.
const ZstdExtension = ".zst"

// ErrLoad wraps every failure to produce a non-empty schematic buffer.
var ErrLoad = errors.New("failed to load schematic")

// Load reads the whole file at path. Files ending in ZstdExtension are
// decompressed transparently. An empty result is an error.
func Load(ctx context.Context, path string) ([]byte, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading schematic.", "path", path)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ZstdExtension) {
		dec, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrLoad, path, err)
		}
		defer dec.Close()
		r = dec
		logger.Debug("Decompressing zstd schematic.", "path", path)
	}

	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoad, path, err)
	}
	if len(buf) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", ErrLoad, path)
	}

	logger.Debug("Schematic loaded.", "path", path, "bytes", len(buf))
	return buf, nil
}
