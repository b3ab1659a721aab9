package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ayoisaiah/pomod/internal/hook"
	"github.com/ayoisaiah/pomod/internal/interval"
	"github.com/ayoisaiah/pomod/internal/notify"
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := c.validateNotifications(); err != nil {
		return err
	}

	if err := c.validateDisplay(); err != nil {
		return err
	}

	if err := c.validateLog(); err != nil {
		return err
	}

	if _, err := hook.Parse(c.Settings.Cmd); err != nil {
		return errInvalidSessionCmd.Wrap(err)
	}

	return nil
}

func (c *Config) validateNotifications() error {
	sound := c.Notifications.Sound
	if sound == "" {
		return nil
	}

	ext := strings.ToLower(filepath.Ext(sound))

	if !slices.Contains(notify.SoundExtensions, ext) {
		return errInvalidSoundFormat.Fmt(sound)
	}

	if _, err := os.Stat(sound); errors.Is(err, os.ErrNotExist) {
		return errSoundNotFound.Fmt(sound)
	}

	return nil
}

func (c *Config) validateDisplay() error {
	for name := range c.Display.Glyphs {
		if _, err := interval.Parse(name); err != nil {
			return errUnknownGlyphState.Fmt(name)
		}
	}

	return nil
}

func (c *Config) validateLog() error {
	var level slog.Level

	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return errInvalidLogLevel.Fmt(c.Log.Level)
	}

	if c.Log.MaxSizeMB < 1 {
		return errInvalidLogSize.Fmt(c.Log.MaxSizeMB)
	}

	if c.Log.MaxBackups < 0 {
		return errInvalidLogRotation.Fmt("max_backups", c.Log.MaxBackups)
	}

	return nil
}

// GlyphOverrides returns the configured glyphs keyed by phase.
func (c *Config) GlyphOverrides() map[interval.State]string {
	glyphs := make(map[interval.State]string, len(c.Display.Glyphs))

	for name, glyph := range c.Display.Glyphs {
		s, err := interval.Parse(name)
		if err != nil {
			continue
		}

		glyphs[s] = glyph
	}

	return glyphs
}
