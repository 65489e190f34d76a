//go:build !wasm
// +build !wasm

package console

// Native builds route console output through log/slog so that tests and
// headless tools can capture framework diagnostics.

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	mu       sync.RWMutex
	levelVar = &slog.LevelVar{}
	logger   = newDefaultLogger()
)

func newDefaultLogger() *slog.Logger {
	levelVar.Set(slog.LevelWarn)
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: levelVar}))
}

// SetLogger replaces the logger backing the console. Passing nil restores the default.
func SetLogger(l *slog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	if l == nil {
		l = newDefaultLogger()
	}
	logger = l
}

// SetRawLogLevel parses and sets the level of the default logger ("debug", "info", "warn", "error").
func SetRawLogLevel(rawLevel string) {
	var level slog.Level

	switch strings.ToLower(rawLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	levelVar.Set(level)
}

func current() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

func join(args []any) string {
	return strings.TrimSuffix(fmt.Sprintln(args...), "\n")
}

// Log writes an informational message.
func Log(args ...any) {
	current().Info(join(args))
}

// Warn writes a warning.
func Warn(args ...any) {
	current().Warn(join(args))
}

// Error writes an error.
func Error(args ...any) {
	current().Error(join(args))
}
