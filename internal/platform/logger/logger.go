// Package logger provides structured logging functionality for the application.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/phrazzld/postcraft-api/internal/config"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation settings for the optional log file.
const (
	logFileMaxSizeMB  = 10
	logFileMaxBackups = 5
	logFileMaxAgeDays = 30
)

// Setup initializes and configures the application's logging system based on
// the provided configuration. It creates a structured JSON logger with the
// appropriate log level and sets it as the default logger for the application.
//
// When cfg.LogFile is set, every record is also written to that file, which is
// rotated by size and compressed once rotated.
func Setup(cfg config.ServerConfig) (*slog.Logger, error) {
	var out io.Writer = os.Stdout
	if cfg.LogFile != "" {
		out = io.MultiWriter(os.Stdout, NewRotatingFile(cfg.LogFile))
	}

	logger := New(out, cfg.LogLevel)

	// Set this logger as the default for the application
	// This allows using the slog package functions directly (slog.Info, slog.Error, etc.)
	slog.SetDefault(logger)

	return logger, nil
}

// New builds a JSON logger writing to out at the given level.
// An unknown level falls back to info and a warning is printed to stderr.
func New(out io.Writer, levelName string) *slog.Logger {
	level, ok := ParseLevel(levelName)
	if !ok {
		// This will use the default handler (text output to stderr)
		tmpLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		tmpLogger.Warn("invalid log level configured, using default level",
			"configured_level", levelName,
			"default_level", "info")
	}

	handler := slog.NewJSONHandler(out, &slog.HandlerOptions{
		Level: level,
	})

	return slog.New(handler)
}

// ParseLevel maps a case-insensitive level name to a slog.Level.
// The boolean is false when the name is not recognized, in which case
// slog.LevelInfo is returned.
func ParseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// NewRotatingFile returns a writer that appends to path and rotates it by size.
func NewRotatingFile(path string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    logFileMaxSizeMB,
		MaxBackups: logFileMaxBackups,
		MaxAge:     logFileMaxAgeDays,
		Compress:   true,
	}
}
