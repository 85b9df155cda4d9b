// Package testutil provides fixtures for testing the link switcher against
// a real filesystem.
//
// Key components:
//   - SystemRoot: an isolated directory tree laid out like the system paths
//     a switch touches, with helpers to install vendor drivers and inspect
//     the resulting links
//   - FaultyFS: a types.FS wrapper that injects removal and link failures
//   - IsolateState: keeps log files written during tests out of the home
//     directory
//
// Tests use real directories under t.TempDir() because symlink resolution
// is the behavior under test.
package testutil
