package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(format, level string) *Config {
	return &Config{
		Level:   level,
		Format:  format,
		Service: "quote-service",
		Version: "1.2.3",
	}
}

func TestNew(t *testing.T) {
	assert.NotNil(t, New(testConfig("json", "info")))
}

func TestNewWithWriter_JSONFormat(t *testing.T) {
	var buf bytes.Buffer

	logger := NewWithWriter(testConfig("json", "info"), &buf)
	logger.Info("quote added", slog.Int("total_quotes", 11))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "quote added", entry["msg"])
	assert.Equal(t, "quote-service", entry["service_name"])
	assert.Equal(t, "1.2.3", entry["service_version"])
	assert.InDelta(t, 11, entry["total_quotes"], 0)
}

func TestNewWithWriter_TextFormat(t *testing.T) {
	var buf bytes.Buffer

	logger := NewWithWriter(testConfig("text", "debug"), &buf)
	logger.Debug("seed loaded")

	assert.Contains(t, buf.String(), "msg=\"seed loaded\"")
	assert.Contains(t, buf.String(), "service_name=quote-service")
}

func TestNewWithWriter_PrettyFormat(t *testing.T) {
	var buf bytes.Buffer

	logger := NewWithWriter(testConfig("pretty", "info"), &buf)
	logger.Info("server starting")
	logger.Debug("hidden below info")

	assert.Contains(t, buf.String(), "server starting")
	assert.NotContains(t, buf.String(), "hidden below info")
}

func TestNewWithWriter_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	logger := NewWithWriter(testConfig("json", "warn"), &buf)
	logger.Info("dropped")
	logger.Warn("kept")

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")
}

func TestNewWithWriter_TraceLevel(t *testing.T) {
	var buf bytes.Buffer

	logger := NewWithWriter(testConfig("json", "trace"), &buf)
	logger.Log(context.Background(), LevelTrace, "store snapshot")

	assert.Contains(t, buf.String(), "store snapshot")
}

func TestNewWithWriter_RedactsSecrets(t *testing.T) {
	var buf bytes.Buffer

	logger := NewWithWriter(testConfig("json", "info"), &buf)
	logger.Info("request", slog.String("authorization", "Bearer abc123"))

	assert.NotContains(t, buf.String(), "abc123")
	assert.Contains(t, buf.String(), "authorization")
}

func TestNewWithWriter_WithFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "logs", "quote-service.log")

	cfg := testConfig("text", "info")
	cfg.File = FileConfig{
		Enabled:    true,
		Path:       logFile,
		MaxSizeMB:  1,
		MaxBackups: 1,
		MaxAgeDays: 1,
	}

	var buf bytes.Buffer

	logger := NewWithWriter(cfg, &buf)
	logger.Info("written twice")

	assert.Contains(t, buf.String(), "written twice")

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(content), &entry), "file output is always JSON")
	assert.Equal(t, "written twice", entry["msg"])
	assert.Equal(t, "quote-service", entry["service_name"])
}

func TestNewWithWriter_FileDisabledWithoutPath(t *testing.T) {
	cfg := testConfig("json", "info")
	cfg.File = FileConfig{Enabled: true}

	var buf bytes.Buffer

	logger := NewWithWriter(cfg, &buf)
	logger.Info("terminal only")

	assert.Contains(t, buf.String(), "terminal only")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"trace", LevelTrace},
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLevel(tt.input))
		})
	}
}

func TestSlogToCharmLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    slog.Level
		expected log.Level
	}{
		{"trace", LevelTrace, log.DebugLevel},
		{"debug", slog.LevelDebug, log.DebugLevel},
		{"info", slog.LevelInfo, log.InfoLevel},
		{"between info and warn", slog.Level(2), log.InfoLevel},
		{"warn", slog.LevelWarn, log.WarnLevel},
		{"error", slog.LevelError, log.ErrorLevel},
		{"above error", slog.Level(12), log.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, slogToCharmLevel(tt.input))
		})
	}
}
