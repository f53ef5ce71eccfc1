package compiler

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFile creates a file, making parent directories as needed.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestOverlayTree_CopiesDisjointTrees(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	writeFile(t, filepath.Join(src, "a.css"), "a")
	writeFile(t, filepath.Join(src, "js", "app.js"), "app")
	writeFile(t, filepath.Join(src, "js", "lib", "util.js"), "util")

	placed, err := overlayTree(src, dst)
	require.NoError(t, err)

	assert.Equal(t, 3, placed)
	assert.Equal(t, "a", readFile(t, filepath.Join(dst, "a.css")))
	assert.Equal(t, "app", readFile(t, filepath.Join(dst, "js", "app.js")))
	assert.Equal(t, "util", readFile(t, filepath.Join(dst, "js", "lib", "util.js")))
}

func TestOverlayTree_NeverReplacesExistingFiles(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	writeFile(t, filepath.Join(src, "shared.css"), "later layer")
	writeFile(t, filepath.Join(src, "new.css"), "new")
	writeFile(t, filepath.Join(dst, "shared.css"), "first layer")

	placed, err := overlayTree(src, dst)
	require.NoError(t, err)

	assert.Equal(t, 1, placed, "only the new file should be copied")
	assert.Equal(t, "first layer", readFile(t, filepath.Join(dst, "shared.css")))
	assert.Equal(t, "new", readFile(t, filepath.Join(dst, "new.css")))
}

func TestOverlayTree_FirstLayerWinsAcrossLayers(t *testing.T) {
	base := t.TempDir()
	derived := t.TempDir()
	dst := t.TempDir()
	writeFile(t, filepath.Join(base, "css", "main.css"), "base content")
	writeFile(t, filepath.Join(derived, "css", "main.css"), "derived content")
	writeFile(t, filepath.Join(derived, "css", "extra.css"), "extra")

	// Layers applied in chain order: base first.
	_, err := overlayTree(base, dst)
	require.NoError(t, err)
	_, err = overlayTree(derived, dst)
	require.NoError(t, err)

	assert.Equal(t, "base content", readFile(t, filepath.Join(dst, "css", "main.css")))
	assert.Equal(t, "extra", readFile(t, filepath.Join(dst, "css", "extra.css")))
}

func TestOverlayTree_SourceUnreadable(t *testing.T) {
	dst := t.TempDir()
	_, err := overlayTree(filepath.Join(t.TempDir(), "missing"), dst)
	assert.ErrorIs(t, err, ErrSourceUnreadable)
}

func TestOverlayTree_CreatesDestination(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "a.txt"), "a")
	dst := filepath.Join(t.TempDir(), "not", "yet", "there")

	placed, err := overlayTree(src, dst)
	require.NoError(t, err)
	assert.Equal(t, 1, placed)
	assert.Equal(t, "a", readFile(t, filepath.Join(dst, "a.txt")))
}

func TestOverlayTree_DestinationNotADirectory(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	writeFile(t, filepath.Join(src, "assets", "a.css"), "a")
	// A file already occupies the path where a subdirectory must go.
	writeFile(t, filepath.Join(dst, "assets"), "plain file")

	_, err := overlayTree(src, dst)
	assert.ErrorIs(t, err, ErrCreateDir)
}

func TestOverlayTree_UnreadableSourceFile(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root ignores file permissions")
	}
	src := t.TempDir()
	dst := t.TempDir()
	writeFile(t, filepath.Join(src, "a.css"), "a")
	require.NoError(t, os.Chmod(filepath.Join(src, "a.css"), 0o000))

	placed, err := overlayTree(src, dst)
	assert.ErrorIs(t, err, ErrCopy)
	assert.Equal(t, 0, placed)
}

func TestOverlayTree_IdempotentAcrossRepeats(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	writeFile(t, filepath.Join(src, "a.txt"), "a")

	placed, err := overlayTree(src, dst)
	require.NoError(t, err)
	assert.Equal(t, 1, placed)

	placed, err = overlayTree(src, dst)
	require.NoError(t, err)
	assert.Equal(t, 0, placed, "second pass should place nothing")
}
