// Package logging builds the charmbracelet/log logger used across LATER.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

const prefix = "later"

// ParseLevel maps a config string to a log level.
func ParseLevel(level string) (log.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel, nil
	case "info":
		return log.InfoLevel, nil
	case "", "warn", "warning":
		return log.WarnLevel, nil
	case "error":
		return log.ErrorLevel, nil
	}
	return 0, fmt.Errorf("unknown log level %q", level)
}

// ParseFormatter maps a config string to a log formatter.
func ParseFormatter(format string) (log.Formatter, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
		return log.TextFormatter, nil
	case "json":
		return log.JSONFormatter, nil
	case "logfmt":
		return log.LogfmtFormatter, nil
	}
	return 0, fmt.Errorf("unknown log format %q", format)
}

// New returns a logger writing to w. Invalid settings fall back to warn/text.
func New(w io.Writer, level, format string) *log.Logger {
	lvl, err := ParseLevel(level)
	if err != nil {
		lvl = log.WarnLevel
	}
	f, err := ParseFormatter(format)
	if err != nil {
		f = log.TextFormatter
	}
	return log.NewWithOptions(w, log.Options{
		Level:     lvl,
		Formatter: f,
		Prefix:    prefix,
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}
