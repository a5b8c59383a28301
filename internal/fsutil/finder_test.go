package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindFilesByExtension(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	root := t.TempDir()
	for _, name := range []string{"b.txt", "a.txt", "c.txt.zst", "notes.md", "nested/d.txt"} {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("1.\n.*\n"), 0o600))
	}

	// --- Act ---
	files, err := FindFilesByExtension(root, ".txt", ".txt.zst")

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(root, "a.txt"),
		filepath.Join(root, "b.txt"),
		filepath.Join(root, "c.txt.zst"),
		filepath.Join(root, "nested", "d.txt"),
	}, files)
}

func TestFindFilesByExtension_MissingRoot(t *testing.T) {
	t.Parallel()

	_, err := FindFilesByExtension(filepath.Join(t.TempDir(), "missing"), ".txt")
	require.Error(t, err)
}

func TestFindFilesByExtension_EmptyExtensionPanics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { _, _ = FindFilesByExtension(".", "") })
	require.Panics(t, func() { _, _ = FindFilesByExtension(".") })
}
