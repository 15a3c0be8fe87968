// Package logging provides the shared leveled logger.
package logging

import (
	"io"

	"github.com/charmbracelet/log"
)

// New creates a logger writing to w. Debug lowers the level so backend
// request traces become visible.
func New(w io.Writer, debug bool) *log.Logger {
	level := log.WarnLevel
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: false,
		Prefix:          "tdo",
	})
}

// Discard returns a logger that drops everything. Handy default for
// constructors whose callers don't care about logs.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}
