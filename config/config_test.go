package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/andareed/teanotice/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, 1500*time.Millisecond, cfg.DurationValue())
	assert.Equal(t, "toast", cfg.Notice.Prefix)
	assert.False(t, cfg.Notice.Closable)
	assert.Equal(t, "#4a9a8a", cfg.Theme.Border)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
[notice]
duration = 3.0
closable = true
close_icon = "x"
prefix = "rc"

[theme]
accent = "#ff0000"
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, cfg.DurationValue())
	assert.Equal(t, "#ff0000", cfg.Theme.Accent)
	assert.Equal(t, "#d4d4d4", cfg.Theme.Text, "unset keys keep defaults")

	p := cfg.NoticeProps("k1", "hello")
	assert.Equal(t, "k1", p.Key)
	assert.Equal(t, 3*time.Second, p.Duration)
	assert.True(t, p.Closable)
	assert.Equal(t, "x", p.CloseIcon)
	assert.Equal(t, "rc", p.PrefixCls)
	assert.Equal(t, "hello", p.Content)
	require.NotNil(t, p.OnClose)

	theme := cfg.NoticeTheme()
	assert.Contains(t, theme.Classes, "rc-notice-closable")
}

func TestZeroDurationDisablesAutoClose(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, "[notice]\nduration = 0.0\n"))
	require.NoError(t, err)
	assert.Zero(t, cfg.NoticeProps("k", "").Duration)
}

func TestNegativeDurationRejected(t *testing.T) {
	_, err := config.Load(writeConfig(t, "[notice]\nduration = -1.0\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must not be negative")
}

func TestExplicitMissingFileIsError(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestMalformedFile(t *testing.T) {
	_, err := config.Load(writeConfig(t, "[notice\nduration ="))
	require.Error(t, err)
}
