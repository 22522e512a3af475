package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer

	logger, err := New(&buf, "warn", "text")
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown", "path", "a.sol")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "path=a.sol")
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer

	logger, err := New(&buf, "DEBUG", "json")
	require.NoError(t, err)

	logger.Debug("file classified", "lines", 3)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "file classified", record["msg"])
	assert.Equal(t, "solloc", record["service"])
	assert.InDelta(t, 3, record["lines"], 0)
}

func TestNew_Invalid(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "loud", "text")
	assert.Error(t, err)

	_, err = New(&bytes.Buffer{}, "info", "xml")
	assert.Error(t, err)
}
