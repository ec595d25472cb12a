// ABOUTME: Leveled debug logging over slog levels for verbose diagnostics
// ABOUTME: Writes to stderr so log lines never mix with escape output on stdout

package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync/atomic"
)

// Level constants matching slog levels.
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

var level atomic.Int64

// out is swappable for tests; everything else writes through it.
var out atomic.Pointer[io.Writer]

func init() {
	level.Store(int64(LevelInfo))
	var w io.Writer = os.Stderr
	out.Store(&w)
}

// SetLevel sets the global log level.
func SetLevel(l slog.Level) {
	level.Store(int64(l))
}

// GetLevel returns the current log level.
func GetLevel() slog.Level {
	return slog.Level(level.Load())
}

// SetOutput redirects log output, returning the previous writer.
func SetOutput(w io.Writer) io.Writer {
	prev := *out.Load()
	out.Store(&w)
	return prev
}

func emit(prefix, format string, args ...any) {
	fmt.Fprintf(*out.Load(), prefix+format+"\n", args...)
}

// Debug logs a debug message if the level allows it.
func Debug(format string, args ...any) {
	if slog.Level(level.Load()) > LevelDebug {
		return
	}
	emit("[DEBUG] ", format, args...)
}

// Info logs an info message if the level allows it.
func Info(format string, args ...any) {
	if slog.Level(level.Load()) > LevelInfo {
		return
	}
	emit("[INFO] ", format, args...)
}

// Warn logs a warning message if the level allows it.
func Warn(format string, args ...any) {
	if slog.Level(level.Load()) > LevelWarn {
		return
	}
	emit("[WARN] ", format, args...)
}

// Error logs an error message (always emitted).
func Error(format string, args ...any) {
	emit("[ERROR] ", format, args...)
}
