package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markolybrx/layout"
	layouterrors "github.com/markolybrx/layout/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultPath)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 80, cfg.Render.Width)
	assert.Equal(t, 8, cfg.Render.PaddingScale)
	assert.Equal(t, 300*time.Millisecond, cfg.Watch.Debounce)
	assert.Equal(t, "info", cfg.Log.Level)
	require.NoError(t, cfg.Validate())
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	path := writeConfig(t, `
limits:
  max_depth: 3
  max_bytes: 64
render:
  width: 120
watch:
  debounce: 50ms
log:
  level: debug
  development: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Limits.MaxDepth)
	assert.Equal(t, 120, cfg.Render.Width)
	assert.Equal(t, 8, cfg.Render.PaddingScale, "unset keys keep defaults")
	assert.Equal(t, 50*time.Millisecond, cfg.Watch.Debounce)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Development)

	_, err = layout.InterpretWithOptions(`<a><b><c><d/></c></b></a>`, cfg.InterpretOptions())
	assert.True(t, layouterrors.IsLimitExceeded(err), "error = %v", err)

	assert.Equal(t, 64, cfg.Limits.MaxBytes)
	_, err = layout.InterpretWithOptions(`<a android:text="`+strings.Repeat("x", 64)+`"/>`, cfg.InterpretOptions())
	assert.True(t, layouterrors.IsLimitExceeded(err), "error = %v", err)

	assert.Equal(t, 120, cfg.RenderOptions().Width)
}

func TestLoadEmptyFile(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv(EnvLogLevel, "warn")
	cfg, err := Load(writeConfig(t, "log:\n  level: debug\n"))
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadRejects(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "unknown key", body: "limits:\n  max_height: 3\n", want: "max_height"},
		{name: "negative limit", body: "limits:\n  max_nodes: -1\n", want: "limits"},
		{name: "negative byte limit", body: "limits:\n  max_bytes: -1\n", want: "limits"},
		{name: "negative width", body: "render:\n  width: -5\n", want: "render"},
		{name: "bad level", body: "log:\n  level: loud\n", want: "loud"},
		{name: "bad yaml", body: "limits: [", want: "parse config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.True(t, strings.Contains(err.Error(), tt.want), "error %q should mention %q", err, tt.want)
		})
	}
}
