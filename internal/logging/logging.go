// Package logging provides the diagnostic logger for cmpatch.
//
// Logging is off unless a destination is configured. Patch output and user
// facing diagnostics never go through this logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

var logger = log.NewWithOptions(io.Discard, log.Options{Level: log.WarnLevel})

// ParseLevel maps a level name to a log.Level. Empty means warn.
func ParseLevel(s string) (log.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "warn", "warning":
		return log.WarnLevel, nil
	case "debug":
		return log.DebugLevel, nil
	case "info":
		return log.InfoLevel, nil
	case "error":
		return log.ErrorLevel, nil
	default:
		return log.WarnLevel, fmt.Errorf("unknown log level: %q", s)
	}
}

// Init points the logger at path. An empty path keeps logging disabled.
// The returned function disables logging again and closes the file.
func Init(path string, level log.Level) (func() error, error) {
	if path == "" {
		SetLogger(log.NewWithOptions(io.Discard, log.Options{Level: level}))
		return func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	SetLogger(New(f, level))
	return func() error {
		SetLogger(nil)
		return f.Close()
	}, nil
}

// New returns a cmpatch logger writing to w.
func New(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "cmpatch",
		ReportTimestamp: true,
	})
}

// SetLogger replaces the package logger. A nil logger disables logging.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.NewWithOptions(io.Discard, log.Options{})
	}
	logger = l
}

// L returns the package logger.
func L() *log.Logger { return logger }

// Op logs the start of op at debug level and returns a function that logs
// its outcome with the elapsed time.
//
//	done := logging.Op("diff", "first", first)
//	defer done(err)
func Op(op string, keyvals ...any) func(error, ...any) {
	start := time.Now()
	logger.Debug("operation start", append([]any{"op", op}, keyvals...)...)
	return func(err error, resultKeyvals ...any) {
		args := make([]any, 0, len(keyvals)+len(resultKeyvals)+6)
		args = append(args, "op", op, "duration", time.Since(start).String())
		args = append(args, keyvals...)
		args = append(args, resultKeyvals...)
		if err != nil {
			args = append(args, "error", err.Error())
			logger.Error("operation failed", args...)
			return
		}
		logger.Info("operation complete", args...)
	}
}
