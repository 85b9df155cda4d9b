// Package types defines the interfaces shared between the link switcher and
// its filesystem backends.
package types
