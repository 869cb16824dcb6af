package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestExitMethodRejected(t *testing.T) {
	var buf bytes.Buffer
	InitializeWriter(&buf, "warn", "json")
	t.Cleanup(func() { Initialize("info", "text") })

	EnterMethod("StartRent", "item", "punks/1")
	ExitMethodRejected("StartRent", "RentedItem", "item", "punks/1")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1, "debug entry must be filtered out")

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "WARN", rec["level"])
	assert.Equal(t, "StartRent", rec["method"])
	assert.Equal(t, "RentedItem", rec["reason"])
	assert.Equal(t, "punks/1", rec["item"])
}

func TestDatabaseResult(t *testing.T) {
	var buf bytes.Buffer
	InitializeWriter(&buf, "debug", "text")
	t.Cleanup(func() { Initialize("info", "text") })

	DatabaseResult("SaveRent", 1, nil)
	DatabaseResult("SaveRent", 0, errors.New("conn reset"))

	out := buf.String()
	assert.Contains(t, out, "Database call succeeded")
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "conn reset")
}
