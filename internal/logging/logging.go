// Package logging provides zerolog-based logging for stardisc.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	mu     sync.RWMutex
	logger = zerolog.New(consoleWriter(os.Stderr)).
		Level(zerolog.InfoLevel).
		With().Timestamp().Logger()
)

// Setup configures the package logger with the given level and output.
// A nil output keeps os.Stderr.
func Setup(level string, output io.Writer) {
	if output == nil {
		output = os.Stderr
	}

	mu.Lock()
	defer mu.Unlock()
	logger = zerolog.New(consoleWriter(output)).
		Level(ParseLevel(level)).
		With().Timestamp().Logger()
}

// L returns the package logger.
func L() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// ParseLevel maps a level string to a zerolog level. Unknown strings
// fall back to info.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Discard silences the package logger. Used by tests.
func Discard() {
	mu.Lock()
	defer mu.Unlock()
	logger = zerolog.Nop()
}

func consoleWriter(w io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.TimeOnly,
	}
}
