package types

import (
	"io/fs"
)

// FS is the filesystem interface the link switcher mutates through
type FS interface {
	// Symlink operations
	Symlink(oldname, newname string) error
	Readlink(name string) (string, error)

	// EvalSymlinks returns the canonical absolute path of name, following
	// every symlink. Every component of name must exist.
	EvalSymlinks(name string) (string, error)

	// Other operations
	Remove(name string) error

	// Lstat does not follow a trailing symlink, so dangling links are seen
	Lstat(name string) (fs.FileInfo, error)
}
