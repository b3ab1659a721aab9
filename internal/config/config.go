// Package config loads pomod settings from the configuration file, the
// environment, and command-line flags.
package config

import (
	"io"
	"log/slog"
	"os"

	"github.com/davecgh/go-spew/spew"
)

type (
	// Config holds all configuration settings
	Config struct {
		Notifications NotificationConfig `mapstructure:"notifications"`
		Display       DisplayConfig      `mapstructure:"display"`
		Log           LogConfig          `mapstructure:"log"`
		Settings      SettingsConfig     `mapstructure:"settings"`
	}

	// NotificationConfig holds notification settings
	NotificationConfig struct {
		Sound   string `mapstructure:"sound"`
		Icon    string `mapstructure:"icon"`
		Enabled bool   `mapstructure:"enabled"`
		// Strict makes a failure to deliver a notification fatal.
		Strict bool `mapstructure:"strict"`
	}

	// DisplayConfig holds display-related settings
	DisplayConfig struct {
		// Glyphs maps a phase (work, short_break, long_break,
		// uninitialized) to the icon shown in the status line.
		Glyphs  map[string]string `mapstructure:"glyphs"`
		NoColor bool              `mapstructure:"no_color"`
	}

	// LogConfig holds logging settings
	LogConfig struct {
		Level      string `mapstructure:"level"`
		MaxSizeMB  int    `mapstructure:"max_size_mb"`
		MaxBackups int    `mapstructure:"max_backups"`
	}

	// SettingsConfig holds general settings
	SettingsConfig struct {
		// Cmd is run after every phase transition.
		Cmd string `mapstructure:"cmd"`
	}

	// Option is a function that modifies Config
	Option func(*Config) error
)

const Version = "v0.3.0"

var Stdout io.Writer = os.Stdout

// defaults mirrors the defaults registered with Viper so that a Config
// built without a file is still valid.
func defaults() *Config {
	return &Config{
		Notifications: NotificationConfig{
			Enabled: true,
		},
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  5,
			MaxBackups: 3,
		},
	}
}

// New creates a new Config with default values and applies options in
// order before validating the result.
func New(opts ...Option) (*Config, error) {
	cfg := defaults()

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}

// SlogLevel returns the configured log level. Validate guarantees that
// the level parses.
func (l LogConfig) SlogLevel() slog.Level {
	var level slog.Level

	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo
	}

	return level
}

// Dump returns a detailed representation of c for debug logs.
func (c *Config) Dump() string {
	return spew.Sdump(c)
}
