// Package glx describes the GL-family libraries a vendor driver provides and
// where each of them is installed on the system.
package glx

// Location identifies one of the fixed system directories a library is
// installed into.
type Location int

const (
	// LibDir is the default library directory.
	LibDir Location = iota
	// ExtensionDir holds the X server GLX extension module.
	ExtensionDir
)

func (l Location) String() string {
	switch l {
	case LibDir:
		return "lib"
	case ExtensionDir:
		return "extension"
	default:
		return "unknown"
	}
}

// Library is a single library a vendor driver directory provides.
type Library struct {
	// Source is the file name under the vendor driver directory.
	Source string
	// Target is the file name the system link is installed as.
	Target string
	// Dir is where the system link lives.
	Dir Location
}

// Libraries is the fixed set of libraries switched between vendors, in
// processing order.
var Libraries = []Library{
	{Source: "libGL.so.1", Target: "libGL.so.1", Dir: LibDir},
	{Source: "libEGL.so.1", Target: "libEGL.so.1", Dir: LibDir},
	{Source: "libGLESv1_CM.so.1", Target: "libGLESv1_CM.so.1", Dir: LibDir},
	{Source: "libGLESv2.so.2", Target: "libGLESv2.so.2", Dir: LibDir},
	// The vendor ships the versioned name but Xorg loads libglx.so
	{Source: "libglx.so.1", Target: "libglx.so", Dir: ExtensionDir},
}

// SupportedDrivers lists the vendor names set-link accepts.
var SupportedDrivers = []string{
	"nvidia",
}

// IsSupported reports whether driver is one of SupportedDrivers.
func IsSupported(driver string) bool {
	for _, d := range SupportedDrivers {
		if d == driver {
			return true
		}
	}
	return false
}
