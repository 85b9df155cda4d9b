package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/gl-driver-switch/pkg/glx"
	"github.com/arthur-debert/gl-driver-switch/pkg/paths"
)

// SystemRoot is an isolated directory tree laid out like the parts of a
// system a link switch touches
type SystemRoot struct {
	t     *testing.T
	root  string
	paths paths.Paths
}

// NewSystemRoot creates a fake system root with the provider root and both
// target directories in place, as a deployed system would have them
func NewSystemRoot(t *testing.T) *SystemRoot {
	t.Helper()

	// Resolve the temp dir so that canonical paths compare equal on systems
	// where it sits behind a symlink
	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	p, err := paths.New(root)
	require.NoError(t, err)

	require.NoError(t, os.MkdirAll(p.ProviderRoot(), 0755))
	require.NoError(t, os.MkdirAll(p.TargetDir(glx.LibDir), 0755))
	require.NoError(t, os.MkdirAll(p.TargetDir(glx.ExtensionDir), 0755))

	return &SystemRoot{
		t:     t,
		root:  root,
		paths: p,
	}
}

// Root returns the fake system root directory
func (sr *SystemRoot) Root() string {
	return sr.root
}

// Paths returns the locations rebased under the fake root
func (sr *SystemRoot) Paths() paths.Paths {
	return sr.paths
}

// InstallDriver populates the vendor driver directory for driver. Each
// library gets a real versioned file under the vendor's private lib dir and
// a symlink to it in the driver directory, like a vendor package ships them.
// It returns the real file of each library keyed by source name.
func (sr *SystemRoot) InstallDriver(driver string, libs ...glx.Library) map[string]string {
	sr.t.Helper()

	driverDir := sr.paths.DriverDir(driver)
	require.NoError(sr.t, os.MkdirAll(driverDir, 0755))

	realFiles := make(map[string]string, len(libs))
	for _, lib := range libs {
		realFile := CreateFile(sr.t, sr.root, filepath.Join("usr/lib", driver, lib.Source+".0.0"), driver+" "+lib.Source)
		// Relative link, so resolution has to normalize ".." components
		rel, err := filepath.Rel(driverDir, realFile)
		require.NoError(sr.t, err)
		require.NoError(sr.t, os.Symlink(rel, filepath.Join(driverDir, lib.Source)))
		realFiles[lib.Source] = realFile
	}
	return realFiles
}

// InstallFullDriver installs every library of glx.Libraries for driver
func (sr *SystemRoot) InstallFullDriver(driver string) map[string]string {
	sr.t.Helper()
	return sr.InstallDriver(driver, glx.Libraries...)
}

// LinkState describes what occupies the system link path of lib: "absent",
// "dir", "file" or "link:<target>"
func (sr *SystemRoot) LinkState(lib glx.Library) string {
	sr.t.Helper()

	path := sr.paths.LinkPath(lib)
	info, err := os.Lstat(path)
	if os.IsNotExist(err) {
		return "absent"
	}
	require.NoError(sr.t, err)

	switch {
	case info.Mode()&os.ModeSymlink != 0:
		target, err := os.Readlink(path)
		require.NoError(sr.t, err)
		return "link:" + target
	case info.IsDir():
		return "dir"
	default:
		return "file"
	}
}

// Snapshot records the LinkState of every library, keyed by source name
func (sr *SystemRoot) Snapshot() map[string]string {
	sr.t.Helper()

	states := make(map[string]string, len(glx.Libraries))
	for _, lib := range glx.Libraries {
		states[lib.Source] = sr.LinkState(lib)
	}
	return states
}
