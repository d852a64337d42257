package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "projectdeck.log")

	logger, closeFn, err := New(Config{File: path, Level: "info"})
	require.NoError(t, err)
	logger.Debug("hidden")
	logger.Info("project created", zap.Int64("id", 7))
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1, "debug entry must be filtered at info level")

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "project created", entry["msg"])
	assert.Equal(t, float64(7), entry["id"])
	assert.Contains(t, entry, "ts")
}

func TestNew_EmptyFileIsNop(t *testing.T) {
	logger, closeFn, err := New(Config{Level: "debug"})
	require.NoError(t, err)
	logger.Info("dropped")
	assert.NoError(t, closeFn())
}

func TestNew_RejectsUnknownLevel(t *testing.T) {
	_, _, err := New(Config{File: filepath.Join(t.TempDir(), "x.log"), Level: "loud"})
	assert.Error(t, err)
}

func TestObserved_Assertions(t *testing.T) {
	o := NewObserved()
	o.Warn("quote refresh failed")

	o.AssertLogged(t, zapcore.WarnLevel, "refresh failed")
	o.AssertNotLogged(t, zapcore.ErrorLevel, "refresh failed")
	assert.Len(t, o.All(), 1)
}
