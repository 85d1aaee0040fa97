package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewWriterLevels(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWriter(&buf, "info")
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("loaded table", zap.Int("entries", 3))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "loaded table")
	assert.Contains(t, out, `"entries": 3`)
}

func TestNewWriterDefaultWarn(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWriter(&buf, "")
	require.NoError(t, err)

	logger.Info("quiet")
	logger.Warn("loud")
	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "loud")
}

func TestNewWriterInvalidLevel(t *testing.T) {
	_, err := NewWriter(&bytes.Buffer{}, "chatty")
	assert.Error(t, err)
}
