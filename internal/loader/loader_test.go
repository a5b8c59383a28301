package loader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/require"
)

const grid = "467..114..\n...*......\n"

func TestLoad_Plain(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(grid), 0o600))

	buf, err := Load(context.Background(), path)

	require.NoError(t, err)
	require.Equal(t, grid, string(buf))
}

func TestLoad_Zstd(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	compressed := enc.EncodeAll([]byte(grid), nil)
	require.NoError(t, enc.Close())

	path := filepath.Join(t.TempDir(), "input.txt.zst")
	require.NoError(t, os.WriteFile(path, compressed, 0o600))

	// --- Act ---
	buf, err := Load(context.Background(), path)

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, grid, string(buf))
}

func TestLoad_Failures(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	empty := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(empty, nil, 0o600))
	corrupt := filepath.Join(dir, "corrupt.txt.zst")
	require.NoError(t, os.WriteFile(corrupt, []byte("not zstd at all"), 0o600))

	testCases := []struct {
		name string
		path string
	}{
		{name: "missing file", path: filepath.Join(dir, "missing.txt")},
		{name: "empty file", path: empty},
		{name: "corrupt zstd", path: corrupt},
		{name: "directory", path: dir},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Load(context.Background(), tc.path)
			require.ErrorIs(t, err, ErrLoad)
		})
	}
}
