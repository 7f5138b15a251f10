package fs_test

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/slswebpack/internal/adapters/fs"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestMatcher_Match(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "handler.js"), "a")
	writeFile(t, filepath.Join(root, "handler.ts"), "b")
	writeFile(t, filepath.Join(root, "other.js"), "c")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "handler.dir"), 0o750))

	matches, err := fs.NewMatcher().Match(root, "handler.*")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "handler.js"),
		filepath.Join(root, "handler.ts"),
	}, matches)
}

func TestMatcher_Match_Nested(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "src", "fns", "hello.js"), "a")

	matches, err := fs.NewMatcher().Match(root, "src/fns/hello.*")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "src", "fns", "hello.js")}, matches)
}

func TestMatcher_Match_DoubleStar(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a", "b", "x.js"), "a")
	writeFile(t, filepath.Join(root, "c", "x.js"), "b")

	matches, err := fs.NewMatcher().Match(root, "**/x.js")
	require.NoError(t, err)
	assert.Len(t, matches, 2)
	assert.True(t, slices.IsSorted(matches))
}

func TestMatcher_Match_NoMatches(t *testing.T) {
	matches, err := fs.NewMatcher().Match(t.TempDir(), "missing.*")
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestMatcher_Match_BadPattern(t *testing.T) {
	_, err := fs.NewMatcher().Match(t.TempDir(), "[")
	require.Error(t, err)
}

func TestHasher(t *testing.T) {
	h := fs.NewHasher()

	a := h.HashBytes([]byte("content"))
	assert.Len(t, a, 16)
	assert.Equal(t, a, h.HashBytes([]byte("content")))
	assert.NotEqual(t, a, h.HashBytes([]byte("other")))

	path := filepath.Join(t.TempDir(), "f.js")
	writeFile(t, path, "content")
	fileHash, err := h.HashFile(path)
	require.NoError(t, err)
	assert.Equal(t, a, fileHash)

	_, err = h.HashFile(filepath.Join(t.TempDir(), "missing"))
	require.ErrorContains(t, err, "failed to open file")

	assert.NotEqual(t, h.Combine("a", "b"), h.Combine("b", "a"))
	assert.NotEqual(t, h.Combine("ab"), h.Combine("a", "b"))
	assert.Equal(t, h.Combine("a", "b"), h.Combine("a", "b"))
}

func TestWalker_WalkDirs(t *testing.T) {
	root := t.TempDir()
	for _, dir := range []string{"src/lib", ".git/objects", "node_modules/x", "package", "docs"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, dir), 0o750))
	}

	output := filepath.Join(root, "package")
	dirs := slices.Collect(fs.NewWalker().WalkDirs(root, func(path string) bool {
		return path == output
	}))

	assert.ElementsMatch(t, []string{
		root,
		filepath.Join(root, "docs"),
		filepath.Join(root, "src"),
		filepath.Join(root, "src", "lib"),
	}, dirs)
}

func TestWalker_WalkDirs_StopEarly(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "a", "b"), 0o750))

	var seen int
	for range fs.NewWalker().WalkDirs(root, nil) {
		seen++
		break
	}
	assert.Equal(t, 1, seen)
}
