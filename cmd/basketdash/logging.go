package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

const (
	logDir      = "logs"
	logFileName = "basketdash.log"
)

// setupLogging returns a logger writing to logs/basketdash.log when debug is
// set, and a discarding logger otherwise. The caller closes the returned file.
func setupLogging(debug bool) (*os.File, *log.Logger) {
	if !debug {
		return nil, log.New(io.Discard)
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, log.New(io.Discard)
	}

	f, err := os.OpenFile(filepath.Join(logDir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, log.New(io.Discard)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.000",
		Prefix:          "basketdash",
		Level:           log.DebugLevel,
	})
	return f, logger
}
