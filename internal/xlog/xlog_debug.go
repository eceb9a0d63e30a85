//go:build debug

// Package xlog is voronoi2d's internal debug-logging helper, used by the
// sweep's core packages (builder, beachline, circlequeue) the
// same way the teacher repo's top-level log_debug.go backs its own
// logDebugf calls: silent by default, switched on with -tags debug.
package xlog

import (
	"log"
	"os"
)

var logger = log.New(os.Stderr, "[voronoi2d DEBUG] ", log.LstdFlags)

// Debugf logs a formatted debug message to stderr. Compiled out entirely
// (down to a no-op) unless the binary is built with -tags debug.
func Debugf(format string, v ...interface{}) {
	logger.Printf(format, v...)
}
