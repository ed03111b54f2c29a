// Package logging builds the structured loggers used across the launcher.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"charm.land/log/v2"
)

// LogFileName is written inside the config directory when the TUI runs with --debug
const LogFileName = "debug.log"

// New creates a logger writing to w. Debug enables debug level; otherwise
// only warnings and errors are reported.
func New(w io.Writer, debug bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "mxtools",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
		logger.SetReportCaller(true)
	} else {
		logger.SetLevel(log.WarnLevel)
	}
	return logger
}

// Nop returns a logger that discards everything
func Nop() *log.Logger {
	logger := log.New(io.Discard)
	logger.SetLevel(log.FatalLevel)
	return logger
}

// OpenFile creates a logger appending to dir/debug.log. The returned closer
// must be called on shutdown.
func OpenFile(dir string, debug bool) (*log.Logger, io.Closer, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, LogFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return New(f, debug), f, nil
}
