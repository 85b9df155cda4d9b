package testutil

import (
	"io/fs"

	"github.com/arthur-debert/gl-driver-switch/pkg/types"
)

// FaultyFS wraps a types.FS and fails selected calls. Errors are keyed by
// path; a matching call returns the error without touching the wrapped FS.
type FaultyFS struct {
	types.FS

	RemoveErrs  map[string]error
	SymlinkErrs map[string]error

	// Calls records every mutating call as "op path"
	Calls []string
}

// NewFaultyFS wraps inner with no faults configured
func NewFaultyFS(inner types.FS) *FaultyFS {
	return &FaultyFS{
		FS:          inner,
		RemoveErrs:  make(map[string]error),
		SymlinkErrs: make(map[string]error),
	}
}

func (f *FaultyFS) Remove(name string) error {
	f.Calls = append(f.Calls, "remove "+name)
	if err, ok := f.RemoveErrs[name]; ok {
		return &fs.PathError{Op: "remove", Path: name, Err: err}
	}
	return f.FS.Remove(name)
}

func (f *FaultyFS) Symlink(oldname, newname string) error {
	f.Calls = append(f.Calls, "symlink "+newname)
	if err, ok := f.SymlinkErrs[newname]; ok {
		return &fs.PathError{Op: "symlink", Path: newname, Err: err}
	}
	return f.FS.Symlink(oldname, newname)
}
