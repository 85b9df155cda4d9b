// Package paths provides centralized path handling for gl-driver-switch.
//
// All locations the switcher reads or mutates are fixed system paths. They
// are joined under a root directory, which is "/" for the installed binary
// and a temporary directory in tests:
//
//   - Provider root: /usr/lib/glx-provider, one subdirectory per vendor
//   - Library directory: /usr/lib
//   - Extension directory: /usr/lib/xorg/modules/extensions
//
// # Usage
//
//	p, err := paths.New("/")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	src := p.SourcePath("nvidia", glx.Libraries[0]) // /usr/lib/glx-provider/nvidia/libGL.so.1
//	dst := p.LinkPath(glx.Libraries[0])             // /usr/lib/libGL.so.1
//
// The audit log location follows the XDG Base Directory specification and
// is not rebased; see LogFilePath.
package paths
