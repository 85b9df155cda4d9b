// Package switcher repoints the system GL library links at the files of a
// vendor driver.
//
// A switch walks glx.Libraries in order. For each library it resolves the
// vendor entry to its canonical real path, removes whatever occupies the
// system link path and creates a symlink there pointing at the resolved
// file. The first failure stops the walk: libraries already relinked stay
// relinked and the rest are left untouched. Nothing is rolled back and no
// lock is taken.
package switcher

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/gl-driver-switch/pkg/errors"
	"github.com/arthur-debert/gl-driver-switch/pkg/glx"
	"github.com/arthur-debert/gl-driver-switch/pkg/logging"
	"github.com/arthur-debert/gl-driver-switch/pkg/paths"
	"github.com/arthur-debert/gl-driver-switch/pkg/types"
)

// Link pairs a vendor entry with the system link that should point at it.
type Link struct {
	Library glx.Library
	// Source is the vendor entry, before resolution
	Source string
	// Path is the system link path
	Path string
}

// Switcher performs link switches against a filesystem.
type Switcher struct {
	fs     types.FS
	paths  paths.Paths
	logger zerolog.Logger
}

// Option configures a Switcher.
type Option func(*Switcher)

// WithLogger overrides the component logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Switcher) {
		s.logger = logger
	}
}

// New creates a Switcher operating on fsys at the locations given by p.
func New(fsys types.FS, p paths.Paths, opts ...Option) *Switcher {
	s := &Switcher{
		fs:     fsys,
		paths:  p,
		logger: logging.GetLogger("switcher"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Links returns the links a switch to driver would touch, in processing
// order. It does not access the filesystem.
func (s *Switcher) Links(driver string) []Link {
	links := make([]Link, 0, len(glx.Libraries))
	for _, lib := range glx.Libraries {
		links = append(links, Link{
			Library: lib,
			Source:  s.paths.SourcePath(driver, lib),
			Path:    s.paths.LinkPath(lib),
		})
	}
	return links
}

// UpdateLinks points every system GL link at the matching file of driver.
// It returns nil only if all of them were relinked; otherwise it returns the
// first *errors.SwitchError encountered.
func (s *Switcher) UpdateLinks(driver string) error {
	logger := s.logger.With().Str("driver", driver).Str("root", s.paths.Root()).Logger()
	done := logging.LogOperationStart(logger, "update-links")
	defer done()

	for _, link := range s.Links(driver) {
		if err := s.relink(logger, link); err != nil {
			logger.Debug().
				Err(err).
				Str("code", string(errors.GetErrorCode(err))).
				Str("library", link.Library.Source).
				Msg("Link switch aborted")
			return err
		}
	}

	logger.Info().Int("libraries", len(glx.Libraries)).Msg("Switched GL driver links")
	return nil
}

// relink performs the resolve, remove and create steps for one library.
func (s *Switcher) relink(logger zerolog.Logger, link Link) error {
	lib := link.Library.Source

	resolved, err := s.fs.EvalSymlinks(link.Source)
	if err != nil {
		return errors.Wrap(err, errors.ErrResolve, "Cannot read link").
			WithDetail("library", lib).
			WithDetail("path", link.Source)
	}
	logger.Debug().Str("library", lib).Str("source", link.Source).Str("resolved", resolved).Msg("Resolved vendor library")

	if s.isLinkPath(resolved, link.Path) {
		return errors.Newf(errors.ErrLink, "Unable to link %s: vendor library resolves to the system link itself", link.Path).
			WithDetail("library", lib).
			WithDetail("path", link.Path)
	}

	// Lstat so that a dangling link at the target is removed too. Any other
	// failure is left for Symlink to report.
	var previous string
	if info, err := s.fs.Lstat(link.Path); err == nil {
		if info.Mode()&fs.ModeSymlink != 0 {
			previous, _ = s.fs.Readlink(link.Path)
		}
		if err := s.fs.Remove(link.Path); err != nil {
			return errors.Wrapf(syscallErr(err), errors.ErrRemove, "Unable to remove %s", link.Path).
				WithDetail("library", lib).
				WithDetail("path", link.Path)
		}
		logger.Debug().Str("library", lib).Str("link", link.Path).Msg("Removed existing system link")
	}

	if err := s.fs.Symlink(resolved, link.Path); err != nil {
		return errors.Wrapf(syscallErr(err), errors.ErrLink, "Unable to link %s", resolved).
			WithDetail("library", lib).
			WithDetail("path", link.Path)
	}

	logger.Info().
		Str("library", lib).
		Str("source", link.Source).
		Str("target", resolved).
		Str("link", link.Path).
		Str("previous", previous).
		Msg("Relinked library")
	return nil
}

// isLinkPath reports whether the canonical path resolved names the system
// link itself. Replacing it would delete the vendor file and leave a link
// pointing at itself.
func (s *Switcher) isLinkPath(resolved, linkPath string) bool {
	if resolved == linkPath {
		return true
	}
	// The target directory may itself sit behind a symlink (/lib -> usr/lib)
	dir, err := s.fs.EvalSymlinks(filepath.Dir(linkPath))
	if err != nil {
		return false
	}
	return resolved == filepath.Join(dir, filepath.Base(linkPath))
}

// syscallErr strips the path wrapper from err, because the message
// already names the path involved.
func syscallErr(err error) error {
	switch e := err.(type) {
	case *fs.PathError:
		return e.Err
	case *os.LinkError:
		return e.Err
	}
	return err
}
