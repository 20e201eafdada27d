package crawl

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/docpipe/core/errors"
)

func writeTree(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("/** @function x */"), 0644))
	}
}

func relAll(t *testing.T, root string, paths []string) []string {
	t.Helper()
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		rel, err := filepath.Rel(root, p)
		require.NoError(t, err)
		out = append(out, filepath.ToSlash(rel))
	}
	return out
}

func TestDiscoverRecursive(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root,
		"a.js",
		"b.txt",
		"lib/c.js",
		"lib/deep/d.js",
		"lib/deep/e.ts",
		".git/hooks/f.js",
		"node_modules/pkg/g.js",
		"lib/node_modules/h.js",
	)

	files, err := Discover(root, Options{Exclude: DefaultExclude})
	require.NoError(t, err)

	assert.Equal(t, []string{"a.js", "lib/c.js", "lib/deep/d.js"}, relAll(t, root, files))
}

func TestDiscoverMultipleExtensions(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "a.js", "b.ts", "c.vue", "d.md")

	files, err := Discover(root, Options{Extensions: []string{".js", "ts", "vue"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"a.js", "b.ts", "c.vue"}, relAll(t, root, files))
}

func TestDiscoverExcludeGlobs(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "src/a.js", "src/a.test.js", "dist/b.js", "vendor/x/c.js")

	files, err := Discover(root, Options{Exclude: []string{"dist", "**/*.test.js", "vendor/**"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"src/a.js"}, relAll(t, root, files))
}

func TestDiscoverIncludeHidden(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, ".config/a.js")

	files, err := Discover(root, Options{IncludeHidden: true})
	require.NoError(t, err)

	assert.Equal(t, []string{".config/a.js"}, relAll(t, root, files))
}

func TestDiscoverMissingRoot(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "missing"), Options{})
	require.Error(t, err)
	assert.Equal(t, errors.KindDiscovery, errors.KindOf(err))
}

func TestDiscoverRootIsFile(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "a.js")

	_, err := Discover(filepath.Join(root, "a.js"), Options{})
	require.Error(t, err)
}

func TestDiscoverEmptyExtension(t *testing.T) {
	_, err := Discover(t.TempDir(), Options{Extensions: []string{"js", " "}})
	require.Error(t, err)
	assert.Equal(t, errors.KindConfig, errors.KindOf(err))
}

func TestQueueDeduplicates(t *testing.T) {
	q := NewQueue()
	q.Add("a")
	q.Add("a/")
	q.Add("b")

	assert.Equal(t, 2, q.Visited())
	assert.Equal(t, "a", q.Next())
	assert.Equal(t, "b", q.Next())
	assert.False(t, q.HasNext())
	assert.Equal(t, []string{"a", "b"}, q.All())
}

func TestIsHidden(t *testing.T) {
	assert.True(t, IsHidden(".git"))
	assert.False(t, IsHidden("."))
	assert.False(t, IsHidden(".."))
	assert.False(t, IsHidden("src"))
}
