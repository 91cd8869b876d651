package app

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/flashdeck/internal/config"
	"github.com/heartmarshall/flashdeck/pkg/ctxutil"
)

func TestNewLogger_SetsDefault(t *testing.T) {
	logger := NewLogger(config.LogConfig{Level: "info", Format: "json"})
	assert.Same(t, logger.Handler(), slog.Default().Handler())
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{" info ", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"Warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run("level_"+tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, parseLevel(tt.in))
		})
	}
}

func TestNewHandler_SuppressesBelowLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(newHandler(&buf, config.LogConfig{Level: "warn", Format: "text"}))

	logger.Info("deck loaded")
	assert.Zero(t, buf.Len())

	logger.Warn("deck load failed")
	assert.Contains(t, buf.String(), "deck load failed")
}

func TestNewHandler_TextAddSource_JSONNoSource(t *testing.T) {
	t.Parallel()

	var textBuf, jsonBuf bytes.Buffer
	slog.New(newHandler(&textBuf, config.LogConfig{Level: "info", Format: "text"})).Info("hello")
	slog.New(newHandler(&jsonBuf, config.LogConfig{Level: "info", Format: "json"})).Info("hello")

	assert.Contains(t, textBuf.String(), "source=")

	var m map[string]any
	require.NoError(t, json.Unmarshal(jsonBuf.Bytes(), &m))
	assert.NotContains(t, m, "source")
}

func TestNewHandler_RequestID(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(newHandler(&buf, config.LogConfig{Level: "info", Format: "json"}))

	logger.InfoContext(ctxutil.WithRequestID(context.Background(), "req-42"), "card collected")

	var m map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &m))
	assert.Equal(t, "req-42", m["request_id"])
}

func TestNewHandler_Pretty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(newHandler(&buf, config.LogConfig{Level: "debug", Format: "PRETTY"}))
	logger.Debug("deck loaded", slog.Int("cards", 12))

	out := buf.String()
	assert.Contains(t, out, "DBG")
	assert.Contains(t, out, "deck loaded")
	assert.Contains(t, out, "cards=12")
	assert.False(t, strings.Contains(out, "\x1b["), "non-terminal output must not be colorized: %q", out)
}
