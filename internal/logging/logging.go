// Package logging builds the application logger on top of charmbracelet/log.
package logging

import (
	"io"

	"github.com/charmbracelet/log"
)

// TimeFormat is the timestamp layout used by every logger, e.g. "14:32:01.45".
const TimeFormat = "15:04:05.00"

// New creates a logger writing to w. Debug output is enabled when verbose is set.
func New(w io.Writer, verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      TimeFormat,
		Level:           level,
	})
}

// OrDefault returns l, or the package default logger when l is nil.
func OrDefault(l *log.Logger) *log.Logger {
	if l != nil {
		return l
	}
	return log.Default()
}

// Component returns a child logger tagged with the component name.
func Component(l *log.Logger, name string) *log.Logger {
	return OrDefault(l).WithPrefix(name)
}
