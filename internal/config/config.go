package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Seed     SeedConfig
	Log      LogConfig
	UI       UIConfig
}

// DatabaseConfig holds sqlite settings. An empty path keeps the order in
// memory only, re-seeded on every start.
type DatabaseConfig struct {
	Path string
}

// SeedConfig points at an optional TOML file with the initial places.
type SeedConfig struct {
	Path string
}

// LogConfig holds structured logging settings. An empty path discards logs.
type LogConfig struct {
	Path   string
	Level  string
	Format string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Title string
}

// Load reads configuration from file and env. Env var overrides use prefix PLACELIST_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("database.path", "")
	v.SetDefault("seed.path", "")
	v.SetDefault("log.path", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("ui.title", "Places")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("PLACELIST_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "placelist"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("PLACELIST")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Database.Path = expandHome(c.Database.Path)
	c.Seed.Path = expandHome(c.Seed.Path)
	c.Log.Path = expandHome(c.Log.Path)
	return c, nil
}

func expandHome(p string) string {
	p = strings.TrimSpace(p)
	if p == "~" || strings.HasPrefix(p, "~/") {
		return filepath.Join(os.Getenv("HOME"), strings.TrimPrefix(p, "~"))
	}
	return p
}
