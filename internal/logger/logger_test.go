package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeRecord(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record), "log line: %s", buf.String())
	return record
}

func TestInitLoggerWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	InitLoggerWithWriter(NewConfig("info", "JSON", "quest-api", "1.2.0", "test", false), &buf)

	Info("activity logged", "xp", 40)

	record := decodeRecord(t, &buf)
	assert.Equal(t, "quest-api", record[AttrKeyService])
	assert.Equal(t, "1.2.0", record[AttrKeyVersion])
	assert.Equal(t, "test", record[AttrKeyEnvironment])
	assert.Equal(t, "INFO", record["level"])
	assert.Equal(t, "activity logged", record["msg"])
	assert.Equal(t, float64(40), record["xp"])
}

func TestInitLoggerWithWriter_Text(t *testing.T) {
	var buf bytes.Buffer
	InitLoggerWithWriter(NewConfig("debug", "text", "", "", "", false), &buf)

	Debug("boss defeated")

	assert.Contains(t, buf.String(), "msg=\"boss defeated\"")
	assert.Contains(t, buf.String(), "service="+DefaultServiceName)
}

func TestNewConfig_FillsBlanks(t *testing.T) {
	cfg := NewConfig("", "", "", "", "", true)

	assert.Equal(t, DefaultServiceName, cfg.ServiceName)
	assert.Equal(t, DefaultVersion, cfg.Version)
	assert.Equal(t, EnvironmentDev, cfg.Environment)
	assert.True(t, cfg.AddSource)
	assert.False(t, cfg.IsJSON())
}

func TestConfig_LogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for level, want := range tests {
		assert.Equal(t, want, Config{Level: level}.LogLevel(), "level %q", level)
	}
}

func TestRequestIDContext(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-123")
	assert.Equal(t, "req-123", GetRequestID(ctx))

	_, ok := RequestIDFromContext(context.Background())
	assert.False(t, ok)
	assert.Empty(t, GetRequestID(context.Background()))
	assert.NotEqual(t, GenerateRequestID(), GenerateRequestID())
}

func TestFromContext_AddsRequestID(t *testing.T) {
	var buf bytes.Buffer
	InitLoggerWithWriter(Config{Level: "debug", Format: "json"}, &buf)

	FromContext(WithRequestID(context.Background(), "req-42")).Debug("hello")

	assert.Equal(t, "req-42", decodeRecord(t, &buf)[AttrKeyRequestID])
}

func TestFromContext_AddsCharacterID(t *testing.T) {
	var buf bytes.Buffer
	InitLoggerWithWriter(Config{Level: "info", Format: "json"}, &buf)

	ctx := WithCharacterID(WithRequestID(context.Background(), "req-7"), "c-1")
	FromContext(ctx).Info("logged")

	record := decodeRecord(t, &buf)
	assert.Equal(t, "c-1", record[AttrKeyCharacterID])
	assert.Equal(t, "req-7", record[AttrKeyRequestID])

	_, ok := CharacterIDFromContext(WithCharacterID(context.Background(), ""))
	assert.False(t, ok, "empty character id is not stored")
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	InitLoggerWithWriter(Config{Level: "warn", Format: "text"}, &buf)

	Info("dropped")
	assert.Zero(t, buf.Len())

	Warn("kept")
	Error("also kept")
	assert.Contains(t, buf.String(), "kept")
	assert.Contains(t, buf.String(), "also kept")
}
