package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/andareed/teanotice/notice"
	"github.com/charmbracelet/lipgloss"
)

type Config struct {
	Notice NoticeConfig `toml:"notice"`
	Theme  ThemeConfig  `toml:"theme"`
}

type NoticeConfig struct {
	// Duration in seconds. 0 disables auto-close.
	Duration  float64 `toml:"duration"`
	Closable  bool    `toml:"closable"`
	CloseIcon string  `toml:"close_icon"`
	Prefix    string  `toml:"prefix"`
}

type ThemeConfig struct {
	Border string `toml:"border"`
	Text   string `toml:"text"`
	Accent string `toml:"accent"`
}

// DefaultPath is where Load looks when no path is given.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "teanotice", "config.toml")
}

// Load reads the TOML config at path over the defaults. An empty path
// falls back to DefaultPath, and a missing default file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
		if path == "" {
			return cfg, nil
		}
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return nil, fmt.Errorf("config %q: %w", path, err)
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("decoding config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

func Default() *Config {
	return &Config{
		Notice: NoticeConfig{
			Duration: notice.DefaultDuration.Seconds(),
			Prefix:   notice.DefaultPrefix,
		},
		Theme: ThemeConfig{
			Border: "#4a9a8a",
			Text:   "#d4d4d4",
			Accent: "#e6b450",
		},
	}
}

func (c *Config) Validate() error {
	if c.Notice.Duration < 0 {
		return fmt.Errorf("notice.duration must not be negative, got %v", c.Notice.Duration)
	}
	return nil
}

// DurationValue converts the configured seconds to a time.Duration.
func (c *Config) DurationValue() time.Duration {
	return time.Duration(c.Notice.Duration * float64(time.Second))
}

// NoticeProps builds notice props from the configured defaults.
func (c *Config) NoticeProps(key, content string) notice.Props {
	p := notice.NewProps(key)
	p.Duration = c.DurationValue()
	p.Closable = c.Notice.Closable
	p.CloseIcon = c.Notice.CloseIcon
	if c.Notice.Prefix != "" {
		p.PrefixCls = c.Notice.Prefix
	}
	p.Content = content
	return p
}

func (c *Config) NoticeTheme() notice.Theme {
	return notice.NewTheme(c.Notice.Prefix,
		lipgloss.Color(c.Theme.Border),
		lipgloss.Color(c.Theme.Text),
		lipgloss.Color(c.Theme.Accent),
	)
}
