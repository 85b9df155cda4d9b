package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// CreateFile creates a file with content under baseDir, creating parent
// directories as needed, and returns its path
func CreateFile(t *testing.T, baseDir, name, content string) string {
	t.Helper()

	path := filepath.Join(baseDir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// CreateSymlink creates a symlink at baseDir/name pointing at target
func CreateSymlink(t *testing.T, baseDir, name, target string) string {
	t.Helper()

	path := filepath.Join(baseDir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.Symlink(target, path))
	return path
}
