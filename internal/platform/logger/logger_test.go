// Package logger_test contains tests for the logger package
package logger_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/phrazzld/postcraft-api/internal/config"
	"github.com/phrazzld/postcraft-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// restoreDefault resets the process-wide logger after a test that calls Setup.
func restoreDefault(t *testing.T) {
	t.Helper()
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })
}

// TestSetup is a basic test that ensures the Setup function works without errors
func TestSetup(t *testing.T) {
	restoreDefault(t)

	cfg := config.ServerConfig{
		LogLevel: "info",
		Port:     8000,
	}

	l, err := logger.Setup(cfg)
	require.NoError(t, err)
	require.NotNil(t, l)
	assert.Same(t, l, slog.Default(), "Setup should install the logger as the default")
}

// TestSetupWithLogFile verifies records are mirrored into the rotating log file.
func TestSetupWithLogFile(t *testing.T) {
	restoreDefault(t)

	path := filepath.Join(t.TempDir(), "postcraft.log")
	cfg := config.ServerConfig{
		LogLevel: "debug",
		Port:     8000,
		LogFile:  path,
	}

	l, err := logger.Setup(cfg)
	require.NoError(t, err)

	l.Info("file sink check", "component", "test")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "file sink check")
	assert.Contains(t, string(data), `"component":"test"`)
}

// TestInvalidLogLevelParsing tests that when an invalid log level is provided,
// New defaults to info level and logs a warning message to stderr.
func TestInvalidLogLevelParsing(t *testing.T) {
	origStderr := os.Stderr
	stderrR, stderrW, err := os.Pipe()
	require.NoError(t, err)
	os.Stderr = stderrW

	logBuf := new(bytes.Buffer)
	l := logger.New(logBuf, "invalid_level")

	os.Stderr = origStderr
	require.NoError(t, stderrW.Close())

	stderrBuf := new(bytes.Buffer)
	_, err = io.Copy(stderrBuf, stderrR)
	require.NoError(t, err)
	stderrOutput := stderrBuf.String()

	assert.Contains(t, stderrOutput, "invalid log level configured")
	assert.Contains(t, stderrOutput, "invalid_level")

	l.Debug("debug test message")
	l.Info("info test message")
	l.Warn("warn test message")

	logOutput := logBuf.String()
	assert.False(t, strings.Contains(logOutput, "debug test message"),
		"Logger with default info level should not output debug messages")
	assert.Contains(t, logOutput, "info test message")
	assert.Contains(t, logOutput, "warn test message")
}

// TestValidLogLevelParsing tests that valid log levels are correctly parsed.
func TestValidLogLevelParsing(t *testing.T) {
	testCases := []struct {
		name     string
		logLevel string
		want     slog.Level
	}{
		{name: "debug level", logLevel: "debug", want: slog.LevelDebug},
		{name: "info level", logLevel: "info", want: slog.LevelInfo},
		{name: "warn level", logLevel: "warn", want: slog.LevelWarn},
		{name: "error level", logLevel: "error", want: slog.LevelError},
		{name: "case insensitive - DEBUG", logLevel: "DEBUG", want: slog.LevelDebug},
		{name: "case insensitive - Info", logLevel: "Info", want: slog.LevelInfo},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			level, ok := logger.ParseLevel(tc.logLevel)
			assert.True(t, ok)
			assert.Equal(t, tc.want, level)
		})
	}
}

func TestFromContextOrDefault(t *testing.T) {
	defaultLogger := slog.Default()
	customLogger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name     string
		ctx      context.Context
		expected *slog.Logger
	}{
		{
			name:     "nil_context_returns_default",
			ctx:      nil,
			expected: defaultLogger,
		},
		{
			name:     "context_without_logger_returns_default",
			ctx:      context.Background(),
			expected: defaultLogger,
		},
		{
			name:     "context_with_logger_returns_context_logger",
			ctx:      logger.WithLogger(context.Background(), customLogger),
			expected: customLogger,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := logger.FromContextOrDefault(tt.ctx, defaultLogger)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestWithLogger(t *testing.T) {
	t.Run("valid_logger", func(t *testing.T) {
		customLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
		ctx := logger.WithLogger(context.Background(), customLogger)

		assert.Equal(t, customLogger, logger.FromContext(ctx))
	})

	t.Run("nil_logger_panics", func(t *testing.T) {
		assert.Panics(t, func() {
			logger.WithLogger(context.Background(), nil)
		})
	})
}

func TestTestLogBuffer_GetLogEntries(t *testing.T) {
	l, buf := logger.GetTestLogger(t)
	l.Info("first", "n", 1)
	l.Warn("second")

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "first", entries[0]["msg"])
	logger.AssertLogField(t, buf, "level", "WARN")
}
