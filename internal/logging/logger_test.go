package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}

	return entries
}

func TestStoreLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&LoggerConfig{Level: "debug", Format: "json", Output: &buf})

	logger.Info(context.Background(), "bundle packed", "files", 7, "slug", "about")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "info", entries[0]["level"])
	assert.Equal(t, "bundle packed", entries[0]["message"])
	assert.Equal(t, float64(7), entries[0]["files"])
	assert.Equal(t, "about", entries[0]["slug"])
}

func TestStoreLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&LoggerConfig{Level: "warn", Format: "json", Output: &buf})

	ctx := context.Background()
	logger.Debug(ctx, "hidden")
	logger.Info(ctx, "hidden")
	logger.Warn(ctx, errors.New("careful"), "shown")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "shown", entries[0]["message"])
	assert.Equal(t, "careful", entries[0]["error"])
}

func TestStoreLogger_BadLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&LoggerConfig{Level: "loud", Format: "json", Output: &buf})

	logger.Debug(context.Background(), "hidden")
	logger.Info(context.Background(), "shown")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
}

func TestStoreLogger_WithComponent(t *testing.T) {
	var buf bytes.Buffer
	base := NewLogger(&LoggerConfig{Level: "info", Format: "json", Output: &buf})

	base.WithComponent("export").With("store", "Demo").Error(context.Background(), errors.New("x"), "failed")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "export", entries[0]["component"])
	assert.Equal(t, "Demo", entries[0]["store"])
}

func TestPairs(t *testing.T) {
	assert.Equal(t, []any{"a", 1, "b", 2}, pairs([]any{"a", 1, "b", 2}))
	assert.Equal(t, []any{"a", 1, "!BADKEY", "b"}, pairs([]any{"a", 1, "b"}))
	assert.Equal(t, []any{"3", true}, pairs([]any{3, true}))
}

func TestNopLogger(t *testing.T) {
	var l Logger = NopLogger{}
	assert.NotPanics(t, func() {
		l.WithComponent("x").With("a", 1).Info(context.Background(), "nothing")
	})
}
