package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, closer := NewLogger(&Config{Log: Log{Level: "warn"}}, &buf)
	defer closer.Close()

	logger.Info("hidden")
	logger.Warn("shown", "row", 3)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "shown", record["msg"])
	assert.Equal(t, "WARN", record["level"])
	assert.EqualValues(t, 3, record["row"])
}

func TestNewLoggerBadLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger, _ := NewLogger(&Config{Log: Log{Level: "loud"}}, &buf)

	logger.Debug("hidden")
	assert.Zero(t, buf.Len())
	logger.Info("shown")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
}

func TestNewLoggerDevelopment(t *testing.T) {
	var buf bytes.Buffer
	logger, _ := NewLogger(&Config{Development: true, Log: Log{Level: "info"}}, &buf)

	logger.Debug("board regenerated")
	assert.Contains(t, buf.String(), "board regenerated")
	assert.NotContains(t, buf.String(), `"msg"`)
}

func TestNewLoggerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweeper.log")

	var buf bytes.Buffer
	logger, closer := NewLogger(&Config{Log: Log{Level: "info", File: path}}, &buf)
	logger.With("session", "abc").Info("game won")
	require.NoError(t, closer.Close())

	assert.Contains(t, buf.String(), "game won")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"game won"`)
	assert.Contains(t, string(data), `"session":"abc"`)
}
