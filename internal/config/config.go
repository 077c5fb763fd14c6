// Package config loads windpath settings from file and environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. WINDPATH_LOG_LEVEL.
const EnvPrefix = "WINDPATH"

// Config holds application configuration.
type Config struct {
	Log    LogConfig
	Editor EditorConfig
	Watch  WatchConfig
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string
	Format string
}

// EditorConfig holds waypoint editing settings.
type EditorConfig struct {
	PlaceDistance float64 `mapstructure:"place_distance"`
}

// WatchConfig controls reloading of the shared position file.
type WatchConfig struct {
	Enabled  bool
	Debounce time.Duration
}

// DefaultPath returns the config file used when none is given.
func DefaultPath() string {
	if p := os.Getenv(EnvPrefix + "_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "windpath", "config.toml")
}

// Load reads configuration from path (if non-empty), the default config
// location otherwise, and the environment. A missing default file is not an
// error; a missing explicit file is.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("editor.place_distance", 5.0)
	v.SetDefault("watch.enabled", true)
	v.SetDefault("watch.debounce", 200*time.Millisecond)

	v.SetConfigType("toml")
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	v.SetConfigFile(path)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks values that cannot be expressed as defaults.
func (c Config) Validate() error {
	if c.Editor.PlaceDistance <= 0 {
		return fmt.Errorf("editor.place_distance must be positive, got %v", c.Editor.PlaceDistance)
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce must not be negative, got %v", c.Watch.Debounce)
	}
	return nil
}
