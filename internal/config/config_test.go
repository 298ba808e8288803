package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MATHQUEST_DB", "")
	t.Setenv("MATHQUEST_LOG", "")
	t.Setenv("MATHQUEST_DELAY_MS", "")
	t.Setenv("XDG_DATA_HOME", dir)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "mathquest", "mathquest.db"), cfg.DBPath)
	assert.Empty(t, cfg.LogPath)
	assert.Equal(t, 900*time.Millisecond, cfg.TransitionDelay())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("MATHQUEST_DB", "/tmp/q.db")
	t.Setenv("MATHQUEST_LOG", "/tmp/q.log")
	t.Setenv("MATHQUEST_DELAY_MS", "0")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/q.db", cfg.DBPath)
	assert.Equal(t, "/tmp/q.log", cfg.LogPath)
	assert.Equal(t, time.Duration(0), cfg.TransitionDelay())
}

func TestNegativeDelayClampsToZero(t *testing.T) {
	cfg := Config{TransitionDelayMS: -5}
	assert.Equal(t, time.Duration(0), cfg.TransitionDelay())
}
