package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, nil, 0600))
	}
}

func TestFindFilesByExtension(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "b.hcl", "a.hcl", "sub/c.hcl", "sub/readme.md", "hcl", ".git/d.hcl")

	files, err := FindFilesByExtension(root, ".hcl")

	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "a.hcl"),
		filepath.Join(root, "b.hcl"),
		filepath.Join(root, "sub", "c.hcl"),
	}, files)
}

func TestFindFilesByExtensionErrors(t *testing.T) {
	_, err := FindFilesByExtension(filepath.Join(t.TempDir(), "missing"), ".hcl")
	assert.Error(t, err)

	assert.Panics(t, func() { _, _ = FindFilesByExtension(t.TempDir(), "") })
}

func TestExpandPaths(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "a.hcl", "nested/b.hcl", "notes.txt", "extra.graph")
	a := filepath.Join(root, "a.hcl")
	extra := filepath.Join(root, "extra.graph")

	files, err := ExpandPaths([]string{extra, root, a, filepath.Join(root, "missing")}, ".hcl")

	require.NoError(t, err)
	assert.Equal(t, []string{extra, a, filepath.Join(root, "nested", "b.hcl")}, files)
}
