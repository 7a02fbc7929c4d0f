// internal/observability/logger_test.go
package observability

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jrx4d/cartwheel/internal/config"
)

// -- Test Helper Functions --

// testBuffer adapts a bytes.Buffer to the zapcore.WriteSyncer interface so
// tests can inspect console output without capturing stdout.
type testBuffer struct {
	bytes.Buffer
}

func (b *testBuffer) Sync() error { return nil }

// -- Test Cases --

func TestInitialize(t *testing.T) {

	t.Run("should initialize console logger with colors", func(t *testing.T) {
		ResetForTest()
		buf := &testBuffer{}

		cfg := config.LoggerConfig{
			Level:       "debug",
			Format:      "console",
			ServiceName: "TestService",
		}
		Initialize(cfg, buf)
		logger := GetLogger()
		logger.Info("This is a test message.")

		output := buf.String()
		assert.Contains(t, output, "INFO", "Output should contain the log level")
		assert.Contains(t, output, "This is a test message.", "Output should contain the message")
		assert.Contains(t, output, colorGreen, "Info level should be colorized green")
		assert.Contains(t, output, colorReset, "Output should contain the reset color code")
	})

	t.Run("should initialize json logger", func(t *testing.T) {
		ResetForTest()
		buf := &testBuffer{}

		cfg := config.LoggerConfig{
			Level:       "info",
			Format:      "json",
			ServiceName: "JSONTest",
		}
		Initialize(cfg, buf)
		logger := GetLogger()
		logger.Warn("This is a JSON message.", zap.String("key", "value"))

		var logEntry map[string]interface{}
		err := json.Unmarshal(buf.Bytes(), &logEntry)
		require.NoError(t, err, "Log output should be valid JSON")

		assert.Equal(t, "WARN", logEntry["level"])
		assert.Equal(t, "JSONTest", logEntry["logger"])
		assert.Equal(t, "This is a JSON message.", logEntry["msg"])
		assert.Equal(t, "value", logEntry["key"])
	})

	t.Run("should respect the configured level", func(t *testing.T) {
		ResetForTest()
		buf := &testBuffer{}

		Initialize(config.LoggerConfig{Level: "warn", Format: "console"}, buf)
		logger := GetLogger()
		logger.Info("should be filtered")
		logger.Warn("should appear")

		output := buf.String()
		assert.NotContains(t, output, "should be filtered")
		assert.Contains(t, output, "should appear")
	})

	t.Run("should write JSON to a log file if configured", func(t *testing.T) {
		ResetForTest()
		logPath := filepath.Join(t.TempDir(), "run.log")

		cfg := config.LoggerConfig{
			Level:   "debug",
			Format:  "console",
			LogFile: logPath,
			MaxSize: 1,
		}
		Initialize(cfg, &testBuffer{})
		logger := GetLogger()
		logger.Info("File sink message.")

		data, err := os.ReadFile(logPath)
		require.NoError(t, err)

		var logEntry map[string]interface{}
		require.NoError(t, json.Unmarshal(data, &logEntry), "file sink should always be JSON")
		assert.Equal(t, "File sink message.", logEntry["msg"])
	})

	t.Run("initialization happens exactly once", func(t *testing.T) {
		ResetForTest()
		first := &testBuffer{}
		second := &testBuffer{}

		Initialize(config.LoggerConfig{Level: "info", Format: "console", ServiceName: "First"}, first)
		Initialize(config.LoggerConfig{Level: "info", Format: "console", ServiceName: "Second"}, second)

		GetLogger().Info("routed to the first writer")
		assert.Contains(t, first.String(), "routed to the first writer")
		assert.Empty(t, second.String())
	})
}

func TestGetLoggerFallback(t *testing.T) {
	ResetForTest()
	logger := GetLogger()
	require.NotNil(t, logger, "fallback logger should never be nil")
}

func TestColorizedLevelEncoder(t *testing.T) {
	cases := []struct {
		level zapcore.Level
		color string
	}{
		{zapcore.DebugLevel, colorCyan},
		{zapcore.InfoLevel, colorGreen},
		{zapcore.WarnLevel, colorYellow},
		{zapcore.ErrorLevel, colorRed},
	}

	for _, tc := range cases {
		buf := &testBuffer{}
		ResetForTest()
		Initialize(config.LoggerConfig{Level: "debug", Format: "console"}, buf)
		GetLogger().Log(tc.level, "probe")
		assert.Contains(t, buf.String(), tc.color, "level %s should use its color", tc.level)
	}
}
