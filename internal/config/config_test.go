package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFileCreatesDefault(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "config.yaml")

	cfg, created, err := LoadConfigFile(filename)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, DefaultConfig(), cfg)

	// The file now exists on disk.
	_, err = os.Stat(filename)
	require.NoError(t, err)

	// A second load reads the written file instead of recreating it.
	cfg, created, err = LoadConfigFile(filename)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigFileReadsCustomValues(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "config.yaml")
	content := "colors:\n  error: \"#cc0000\"\noutput:\n  pretty: true\n  color: false\n"
	require.NoError(t, os.WriteFile(filename, []byte(content), 0644))

	cfg, created, err := LoadConfigFile(filename)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "#cc0000", cfg.Colors.Error)
	assert.True(t, cfg.Output.Pretty)
	assert.False(t, cfg.Output.Color)
}

func TestLoadConfigFileRejectsMalformedYAML(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(filename, []byte("colors: [not: a: map"), 0644))

	_, _, err := LoadConfigFile(filename)
	assert.Error(t, err)
}
