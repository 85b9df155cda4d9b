package testutil

import (
	"testing"

	"github.com/adrg/xdg"
)

// IsolateState points XDG_STATE_HOME at a temp dir for the duration of the
// test, so log files never land in the real home directory
func IsolateState(t *testing.T) string {
	t.Helper()

	// Registered before Setenv so it runs after the variable is restored
	t.Cleanup(xdg.Reload)

	dir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", dir)
	xdg.Reload()
	return dir
}
