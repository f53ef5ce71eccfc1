package resolver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackbound/themeflat/internal/testutil"
)

// writeTheme creates a theme directory with an optional descriptor.
func writeTheme(t *testing.T, baseDir, name, descriptor string) {
	t.Helper()
	dir := filepath.Join(baseDir, name)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	if descriptor != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "theme.yaml"), []byte(descriptor), 0o644))
	}
}

func chainNames(layers []Layer) []string {
	names := make([]string, len(layers))
	for i, l := range layers {
		names[i] = l.Name
	}
	return names
}

func TestResolveChain_BaseFirst(t *testing.T) {
	baseDir := t.TempDir()
	writeTheme(t, baseDir, "base", "helpers:\n  h0: true\n")
	writeTheme(t, baseDir, "mid", "extends: base\n")
	writeTheme(t, baseDir, "child", "extends: mid\nhelpers:\n  h1: true\n")

	r := NewDirResolver(baseDir, testutil.NewTestLogger(t))
	chain, err := r.ResolveChain("child")
	require.NoError(t, err)

	assert.Equal(t, []string{"base", "mid", "child"}, chainNames(chain))
	assert.Equal(t, filepath.Join(baseDir, "base"), chain[0].Location)
	assert.Equal(t, true, chain[2].Config["helpers"].(map[string]any)["h1"])
}

func TestResolveChain_MixinsFoldedBeforeDeclaringLayer(t *testing.T) {
	baseDir := t.TempDir()
	writeTheme(t, baseDir, "base", "")
	writeTheme(t, baseDir, "icons", "")
	writeTheme(t, baseDir, "grid", "")
	writeTheme(t, baseDir, "child", "extends: base\nmixins: [icons, grid]\n")

	r := NewDirResolver(baseDir, testutil.NewTestLogger(t))
	chain, err := r.ResolveChain("child")
	require.NoError(t, err)

	assert.Equal(t, []string{"base", "icons", "grid", "child"}, chainNames(chain))
}

func TestResolveChain_SingleTheme(t *testing.T) {
	baseDir := t.TempDir()
	writeTheme(t, baseDir, "solo", "")

	r := NewDirResolver(baseDir, testutil.NewTestLogger(t))
	chain, err := r.ResolveChain("solo")
	require.NoError(t, err)
	assert.Equal(t, []string{"solo"}, chainNames(chain))
	assert.Empty(t, chain[0].Config)
}

func TestResolveChain_UnknownTheme(t *testing.T) {
	baseDir := t.TempDir()
	writeTheme(t, baseDir, "base", "")

	r := NewDirResolver(baseDir, testutil.NewTestLogger(t))
	_, err := r.ResolveChain("missing")
	assert.ErrorIs(t, err, ErrUnknownTheme)
}

func TestResolveChain_UnknownParent(t *testing.T) {
	baseDir := t.TempDir()
	writeTheme(t, baseDir, "child", "extends: ghost\n")

	r := NewDirResolver(baseDir, testutil.NewTestLogger(t))
	_, err := r.ResolveChain("child")
	assert.ErrorIs(t, err, ErrUnknownTheme)
}

func TestResolveChain_UnknownMixin(t *testing.T) {
	baseDir := t.TempDir()
	writeTheme(t, baseDir, "child", "mixins: [ghost]\n")

	r := NewDirResolver(baseDir, testutil.NewTestLogger(t))
	_, err := r.ResolveChain("child")
	assert.ErrorIs(t, err, ErrUnknownTheme)
}

func TestResolveChain_Cycle(t *testing.T) {
	baseDir := t.TempDir()
	writeTheme(t, baseDir, "a", "extends: b\n")
	writeTheme(t, baseDir, "b", "extends: a\n")

	r := NewDirResolver(baseDir, testutil.NewTestLogger(t))
	_, err := r.ResolveChain("a")
	assert.ErrorIs(t, err, ErrInheritanceCycle)
}

func TestResolveChain_FlattenedThemeHasNoParent(t *testing.T) {
	baseDir := t.TempDir()
	writeTheme(t, baseDir, "flat", "extends: false\nhelpers:\n  h0: true\n")

	r := NewDirResolver(baseDir, testutil.NewTestLogger(t))
	chain, err := r.ResolveChain("flat")
	require.NoError(t, err)
	assert.Equal(t, []string{"flat"}, chainNames(chain))
}

func TestResolveChain_MissingThemesDir(t *testing.T) {
	r := NewDirResolver(filepath.Join(t.TempDir(), "nope"), testutil.NewTestLogger(t))
	_, err := r.ResolveChain("any")
	assert.Error(t, err)
}

func TestThemes_SortedAndSkipsHidden(t *testing.T) {
	baseDir := t.TempDir()
	writeTheme(t, baseDir, "zeta", "")
	writeTheme(t, baseDir, "alpha", "name: Alpha Theme\n")
	writeTheme(t, baseDir, ".hidden", "")
	writeTheme(t, baseDir, "_staging", "")
	require.NoError(t, os.WriteFile(filepath.Join(baseDir, "notes.txt"), []byte("x"), 0o644))

	r := NewDirResolver(baseDir, testutil.NewTestLogger(t))
	themes, err := r.Themes()
	require.NoError(t, err)

	require.Len(t, themes, 2)
	assert.Equal(t, "alpha", themes[0].Name)
	assert.Equal(t, "Alpha Theme", themes[0].DisplayName)
	assert.Equal(t, "zeta", themes[1].Name)
}
