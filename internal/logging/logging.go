// ABOUTME: Leveled, structured logger shared by the CLI and MCP server.
// ABOUTME: Wraps charmbracelet/log writing to stderr with a "mood" prefix.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// DefaultLevel is used when no level is configured.
const DefaultLevel = "warn"

var defaultLogger *log.Logger

// ParseLevel converts a level name to a log.Level. Unknown names map to warn.
func ParseLevel(s string) log.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.WarnLevel
	}
}

// New builds a logger writing to w at the named level.
func New(w io.Writer, level string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:  ParseLevel(level),
		Prefix: "mood",
	})
}

// Init replaces the default logger with one writing to stderr at level.
func Init(level string) *log.Logger {
	defaultLogger = New(os.Stderr, level)
	return defaultLogger
}

// SetDefault sets the default logger.
func SetDefault(l *log.Logger) {
	defaultLogger = l
}

// Default returns the default logger, creating a stderr logger at DefaultLevel if unset.
func Default() *log.Logger {
	if defaultLogger == nil {
		defaultLogger = New(os.Stderr, DefaultLevel)
	}
	return defaultLogger
}
