package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "bopomofo.csv", cfg.CSVPath)
	assert.Equal(t, "flypy", cfg.Scheme)
	assert.False(t, cfg.Toneless)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("FLYPY_CSV_PATH", "/data/zhuyin.csv")
	t.Setenv("FLYPY_TONELESS", "true")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/data/zhuyin.csv", cfg.CSVPath)
	assert.True(t, cfg.Toneless)
	assert.Equal(t, "flypy", cfg.Scheme)
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flypy.yaml")
	require.NoError(t, os.WriteFile(path, []byte("csv_path: table.csv\nlog_level: debug\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "table.csv", cfg.CSVPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "flypy", cfg.Scheme)
}

func TestLoadYAMLEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flypy.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scheme: flypy\n"), 0o644))
	t.Setenv("FLYPY_SCHEME", "other")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "other", cfg.Scheme)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Contains(t, err.Error(), "config: stat")
}
