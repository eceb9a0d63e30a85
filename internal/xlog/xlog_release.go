//go:build !debug

package xlog

// Debugf is a no-op in non-debug builds, so call sites never need their
// own build tags.
func Debugf(format string, v ...interface{}) {}
