package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

const defaultLogFile = "logs/acala.log"

var (
	globalLogger *slog.Logger
	once         sync.Once
)

// Init configures the process-wide logger exactly once. Later calls are
// no-ops, so the entry point and tests can both call it without stacking
// duplicate sinks. Output goes to stdout and an append-only log file; if the
// file cannot be opened, stdout alone is used.
func Init(level string) {
	once.Do(func() {
		var logLevel slog.Level
		switch level {
		case "debug":
			logLevel = slog.LevelDebug
		case "warn":
			logLevel = slog.LevelWarn
		case "error":
			logLevel = slog.LevelError
		default:
			logLevel = slog.LevelInfo
		}

		path := os.Getenv("ACALA_LOG_FILE")
		if path == "" {
			path = defaultLogFile
		}

		out := io.Writer(os.Stdout)
		if f := openLogFile(path); f != nil {
			out = io.MultiWriter(os.Stdout, f)
		}

		handler := slog.NewTextHandler(out, &slog.HandlerOptions{
			Level: logLevel,
		})
		globalLogger = slog.New(handler)
		slog.SetDefault(globalLogger)
	})
}

func openLogFile(path string) *os.File {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil
	}
	return f
}

// Get returns the global logger instance
func Get() *slog.Logger {
	if globalLogger == nil {
		Init("info")
	}
	return globalLogger
}

// Named returns a child logger tagged with a component name.
func Named(name string) *slog.Logger {
	return Get().With("logger", name)
}

// Helper functions for quick logging
func Info(msg string, args ...any) {
	Get().Info(msg, args...)
}

func Error(msg string, args ...any) {
	Get().Error(msg, args...)
}

func Warn(msg string, args ...any) {
	Get().Warn(msg, args...)
}

func Debug(msg string, args ...any) {
	Get().Debug(msg, args...)
}

func With(args ...any) *slog.Logger {
	return Get().With(args...)
}

func LogError(ctx context.Context, err error, msg string, args ...any) {
	if err == nil {
		return
	}
	args = append(args, slog.String("error", err.Error()))
	Get().ErrorContext(ctx, msg, args...)
}
