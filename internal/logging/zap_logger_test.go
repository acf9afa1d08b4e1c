package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdrepo/mdrmeta/pkg/mdrmeta"
)

func decodeZapLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry), line)
		entries = append(entries, entry)
	}
	return entries
}

func TestZapLogger_WritesJSONEntries(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZapLogger(&buf, false)

	logger.Info("checked %d file(s)", 3)
	logger.Error("decode failed: %s", "bad")
	require.NoError(t, logger.Sync())

	entries := decodeZapLines(t, &buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "info", entries[0]["level"])
	assert.Equal(t, "checked 3 file(s)", entries[0]["msg"])
	assert.Equal(t, "mdrmeta", entries[0]["logger"])
	assert.Contains(t, entries[0], "ts")
	assert.Equal(t, "error", entries[1]["level"])
	assert.Equal(t, "decode failed: bad", entries[1]["msg"])
}

func TestZapLogger_VerboseRespectsLevel(t *testing.T) {
	var quiet bytes.Buffer
	NewZapLogger(&quiet, false).Verbose("hidden")
	assert.Empty(t, quiet.String())

	var loud bytes.Buffer
	NewZapLogger(&loud, true).Verbose("shown")
	entries := decodeZapLines(t, &loud)
	require.Len(t, entries, 1)
	assert.Equal(t, "debug", entries[0]["level"])
	assert.Equal(t, "shown", entries[0]["msg"])
}

func TestNewTo_SelectsImplementation(t *testing.T) {
	var buf bytes.Buffer

	text, err := NewTo(&buf, "", false)
	require.NoError(t, err)
	assert.IsType(t, &ConsoleLogger{}, text)

	text, err = NewTo(&buf, "TEXT", false)
	require.NoError(t, err)
	assert.IsType(t, &ConsoleLogger{}, text)

	structured, err := NewTo(&buf, "json", true)
	require.NoError(t, err)
	assert.IsType(t, &ZapLogger{}, structured)
}

func TestNewTo_UnknownFormat(t *testing.T) {
	_, err := NewTo(&bytes.Buffer{}, "xml", false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, mdrmeta.ErrInvalidConfig))
	assert.Contains(t, err.Error(), `"xml"`)
}
