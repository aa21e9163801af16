package artifact

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}
}

func TestCleanRemovesStale(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "apps")
	touch(t, dir,
		"ApplicationKeep.js", "ApplicationKeep.css",
		"ApplicationGone.js", "ApplicationGone.js.gz", "ApplicationGone.class.php", "ApplicationGone.html",
		"README.txt",
	)
	touch(t, filepath.Join(dir, "nested"), "ApplicationNested.js")

	removed, err := Clean(context.Background(), dir, func(className string) bool {
		return className == "ApplicationKeep"
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "ApplicationGone.class.php"),
		filepath.Join(dir, "ApplicationGone.html"),
		filepath.Join(dir, "ApplicationGone.js"),
		filepath.Join(dir, "ApplicationGone.js.gz"),
	}, removed)

	for _, name := range []string{"ApplicationKeep.js", "ApplicationKeep.css", "README.txt", "nested/ApplicationNested.js"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
}

func TestCleanAll(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "apps")
	touch(t, dir, "PanelItemClock.js", "ServiceSync.css", "notes.md")

	removed, err := Clean(context.Background(), dir, nil)
	require.NoError(t, err)
	assert.Len(t, removed, 2)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "notes.md", entries[0].Name())
}

func TestCleanMissingDir(t *testing.T) {
	removed, err := Clean(context.Background(), filepath.Join(t.TempDir(), "absent"), nil)
	assert.NoError(t, err)
	assert.Empty(t, removed)
}
