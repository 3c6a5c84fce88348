// Package config tests configuration loading.
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv isolates a test from the developer's TADA_* variables.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"TADA_CONFIG_DIR", "TADA_BASE_URL", "TADA_TIMEOUT", "TADA_LOG_LEVEL",
		"TADA_LOG_FORMAT", "TADA_LOG_FILE", "TADA_PREFS_FILE", "TADA_NO_COLOR",
	} {
		t.Setenv(k, "")
	}
}

func writeConfig(t *testing.T, dir, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFile), []byte(body), 0o644))
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	cfg, err := Load(Overrides{Dir: dir})
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.Dir)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, time.Duration(0), cfg.Timeout)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultLogFormat, cfg.LogFormat)
	assert.Equal(t, filepath.Join(dir, LogFileName), cfg.LogFile)
	assert.Equal(t, filepath.Join(dir, PrefsFileName), cfg.PrefsFile)
	assert.False(t, cfg.NoColor)
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeConfig(t, dir, `
base_url = "https://todos.example.com/api/"
timeout = "3s"
log_level = "debug"
log_format = "json"
no_color = true
`)

	cfg, err := Load(Overrides{Dir: dir})
	require.NoError(t, err)

	assert.Equal(t, "https://todos.example.com/api", cfg.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Timeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.True(t, cfg.NoColor)
}

func TestLoad_FileUnknownKey(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeConfig(t, dir, `baseurl = "http://x"`)

	_, err := Load(Overrides{Dir: dir})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "baseurl")
}

func TestLoad_Precedence(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeConfig(t, dir, `
base_url = "http://from-file:1"
log_level = "info"
timeout = "1s"
`)
	t.Setenv("TADA_BASE_URL", "http://from-env:2")
	t.Setenv("TADA_TIMEOUT", "2s")

	cfg, err := Load(Overrides{Dir: dir, Timeout: "5s"})
	require.NoError(t, err)

	assert.Equal(t, "http://from-env:2", cfg.BaseURL, "env beats file")
	assert.Equal(t, 5*time.Second, cfg.Timeout, "flag beats env")
	assert.Equal(t, "info", cfg.LogLevel, "file beats default")

	cfg, err = Load(Overrides{Dir: dir, BaseURL: "http://from-flag:3"})
	require.NoError(t, err)
	assert.Equal(t, "http://from-flag:3", cfg.BaseURL)
}

func TestLoad_DirFromEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv("TADA_CONFIG_DIR", dir)

	cfg, err := Load(Overrides{})
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.Dir)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		ov   Overrides
	}{
		{"bad scheme", nil, Overrides{BaseURL: "ftp://x"}},
		{"no host", nil, Overrides{BaseURL: "http://"}},
		{"bad flag timeout", nil, Overrides{Timeout: "soon"}},
		{"negative timeout", nil, Overrides{Timeout: "-1s"}},
		{"bad env timeout", map[string]string{"TADA_TIMEOUT": "x"}, Overrides{}},
		{"bad env bool", map[string]string{"TADA_NO_COLOR": "perhaps"}, Overrides{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			tt.ov.Dir = t.TempDir()
			_, err := Load(tt.ov)
			assert.Error(t, err)
		})
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, home, expandHome("~"))
	assert.Equal(t, filepath.Join(home, "x", "y"), expandHome("~/x/y"))
	assert.Equal(t, "/abs", expandHome("/abs"))
}
