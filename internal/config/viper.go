package config

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "POMOD"

// viperKeys defines the mapping between config keys and their Viper counterparts.
const (
	keyNotificationsEnabled = "notifications.enabled"
	keyNotificationsStrict  = "notifications.strict"
	keyNotificationsSound   = "notifications.sound"
	keyNotificationsIcon    = "notifications.icon"
	keySessionCmd           = "settings.cmd"
	keyNoColor              = "display.no_color"
	keyLogLevel             = "log.level"
	keyLogMaxSize           = "log.max_size_mb"
	keyLogMaxBackups        = "log.max_backups"
)

// WithViperConfig returns an Option that loads configuration from the YAML
// file at configPath and from POMOD_* environment variables. A missing file
// is not an error: the defaults apply.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v)

		err := v.ReadInConfig()
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper configures Viper with defaults and environment lookups.
func setupViper(v *viper.Viper) {
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keyNotificationsStrict, false)
	v.SetDefault(keyNotificationsSound, "")
	v.SetDefault(keyNotificationsIcon, "")
	v.SetDefault(keySessionCmd, "")
	v.SetDefault(keyNoColor, false)
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyLogMaxSize, 5)
	v.SetDefault(keyLogMaxBackups, 3)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	if err := v.Unmarshal(c); err != nil {
		return errReadConfig.Wrap(err)
	}

	return nil
}
