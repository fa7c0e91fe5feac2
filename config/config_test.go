package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "calkeys.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
endpoint: https://cal.example.com
session_cookie: abc
copy_links: true
calendar: false
week_start: Sunday
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "https://cal.example.com", cfg.Endpoint)
	assert.Equal(t, "abc", cfg.SessionCookie)
	assert.True(t, cfg.CopyLinks)
	assert.False(t, cfg.Calendar)
	assert.Equal(t, "calkeys.log", cfg.LogFile)
	assert.Equal(t, time.Sunday, cfg.FirstWeekday())
}

func TestLoadInvalid(t *testing.T) {
	tests := map[string]string{
		"bad yaml":       "endpoint: [",
		"bad endpoint":   "endpoint: localhost",
		"bad week start": "week_start: friday",
		"bad base path":  "base_path: cal",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, content))
			assert.Error(t, err)
		})
	}
}

func TestFirstWeekdayDefault(t *testing.T) {
	assert.Equal(t, time.Monday, Default().FirstWeekday())
}
