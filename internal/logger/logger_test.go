package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer

	log, err := New(Config{Level: LevelDebug, Format: FormatJSON, Output: &buf})
	require.NoError(t, err)

	log.Debug("composed unit", "unit", "Point")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "composed unit", rec["msg"])
	assert.Equal(t, "Point", rec["unit"])
	assert.Equal(t, "DEBUG", rec["level"])
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer

	log, err := New(Config{Level: LevelWarn, Output: &buf})
	require.NoError(t, err)

	log.Info("hidden")
	assert.Empty(t, buf.String())

	log.Warn("skipping unit", "unit", "Direction")
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "unit=Direction")
}

func TestNew_UnknownFormat(t *testing.T) {
	_, err := New(Config{Format: "xml"})
	require.Error(t, err)
}
