package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"placebook/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_JSON(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "placebook"
	cfg.Env.Log.Level = "warn"

	var buf bytes.Buffer
	logger, err := NewWithWriter(cfg, &buf)
	require.NoError(t, err)

	logger.Info("dropped")
	logger.Warn("kept", slog.String("k", "v"))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "kept", line["msg"])
	assert.Equal(t, "placebook", line["service"])
	assert.Equal(t, "v", line["k"])
}

func TestNewWithWriter_Pretty(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Log.Pretty = true

	var buf bytes.Buffer
	logger, err := NewWithWriter(cfg, &buf)
	require.NoError(t, err)

	logger.Info("hello")
	assert.Contains(t, buf.String(), "msg=hello")
}

func TestParseLogLevel(t *testing.T) {
	level, err := parseLogLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	level, err = parseLogLevel("")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)

	_, err = parseLogLevel("verbose")
	assert.Error(t, err)
}
