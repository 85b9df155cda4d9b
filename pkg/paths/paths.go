package paths

import (
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/arthur-debert/gl-driver-switch/pkg/errors"
	"github.com/arthur-debert/gl-driver-switch/pkg/glx"
)

// Fixed system locations, relative to the system root.
// These are NOT user-configurable: the vendor packages install into them
// and the dynamic loader and X server read from them.
const (
	// ProviderRoot holds one directory per vendor driver
	ProviderRoot = "/usr/lib/glx-provider"

	// LibDir is where the GL libraries are linked
	LibDir = "/usr/lib"

	// ExtensionDir is where the X server looks for the GLX module
	ExtensionDir = "/usr/lib/xorg/modules/extensions"
)

const (
	// AppDirName is the directory name for gl-driver-switch files under XDG dirs
	AppDirName = "gl-driver-switch"

	// LogFileName is the name of the log file
	LogFileName = "gl-driver-switch.log"
)

// Paths provides the locations used by a link switch
type Paths interface {
	Root() string
	ProviderRoot() string
	DriverDir(driver string) string
	SourcePath(driver string, lib glx.Library) string
	TargetDir(loc glx.Location) string
	LinkPath(lib glx.Library) string
}

type paths struct {
	// root is the directory every fixed location is joined under
	root string
}

// New creates a new Paths instance rooted at root.
// An empty root means the real system root.
func New(root string) (Paths, error) {
	if root == "" {
		root = "/"
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal, "failed to get absolute path for root %s", root)
	}

	return &paths{root: absRoot}, nil
}

func (p *paths) rebase(path string) string {
	return filepath.Join(p.root, path)
}

// Root returns the system root directory
func (p *paths) Root() string {
	return p.root
}

// ProviderRoot returns the directory holding all vendor driver directories
func (p *paths) ProviderRoot() string {
	return p.rebase(ProviderRoot)
}

// DriverDir returns the vendor driver directory for driver. It is not
// checked for existence.
func (p *paths) DriverDir(driver string) string {
	return filepath.Join(p.ProviderRoot(), driver)
}

// SourcePath returns the vendor entry for lib
func (p *paths) SourcePath(driver string, lib glx.Library) string {
	return filepath.Join(p.DriverDir(driver), lib.Source)
}

// TargetDir returns the system directory for loc
func (p *paths) TargetDir(loc glx.Location) string {
	if loc == glx.ExtensionDir {
		return p.rebase(ExtensionDir)
	}
	return p.rebase(LibDir)
}

// LinkPath returns the system link path for lib
func (p *paths) LinkPath(lib glx.Library) string {
	return filepath.Join(p.TargetDir(lib.Dir), lib.Target)
}

// LogFilePath returns the path of the audit log file under XDG_STATE_HOME
func LogFilePath() string {
	return filepath.Join(xdg.StateHome, AppDirName, LogFileName)
}
