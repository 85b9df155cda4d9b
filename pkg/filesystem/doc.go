// Package filesystem provides filesystem implementations for gl-driver-switch.
//
// This package contains implementations of the types.FS interface.
// Production code always uses the OS filesystem; tests wrap it to inject
// failures.
package filesystem
