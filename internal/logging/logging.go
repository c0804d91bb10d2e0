// Package logging builds the hclog loggers used by matbench.
package logging

import (
	"io"

	"github.com/hashicorp/go-hclog"
)

// New returns a named logger writing to output.
// An unknown level string falls back to Info.
func New(name, level string, jsonFormat bool, output io.Writer) hclog.Logger {
	return hclog.New(makeLoggerOptions(name, hclog.LevelFromString(level), jsonFormat, output))
}

func makeLoggerOptions(name string, level hclog.Level, jsonFormat bool, output io.Writer) *hclog.LoggerOptions {
	if level == hclog.NoLevel {
		level = hclog.Info
	}
	return &hclog.LoggerOptions{
		Name:       name,
		Output:     output,
		Level:      level,
		JSONFormat: jsonFormat,
	}
}
