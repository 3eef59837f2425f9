package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/archigen/archigen/pkg/errors"
)

// Config holds defaults read from the TOML config file. Command-line
// flags always win over config values, which win over built-in
// defaults.
type Config struct {
	Theme       string `toml:"theme"`
	Direction   string `toml:"direction"`
	Language    string `toml:"language"` // path to a translation file
	PlantUMLJar string `toml:"plantuml_jar"`

	Cache CacheConfig `toml:"cache"`
	Redis RedisConfig `toml:"redis"`
	Serve ServeConfig `toml:"serve"`
}

// CacheConfig controls the local result cache.
type CacheConfig struct {
	Dir      string `toml:"dir"` // default ~/.cache/archigen
	Disabled bool   `toml:"disabled"`
}

// RedisConfig selects a Redis cache backend. When Addr is empty the
// file cache is used instead.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// ServeConfig holds defaults for the serve command.
type ServeConfig struct {
	Addr string `toml:"addr"`
}

// LoadConfig reads the config file at path. An empty path falls back
// to the default location; a missing default file yields a zero
// config, while an explicitly named file must exist.
func LoadConfig(path string) (*Config, error) {
	explicit := path != ""
	if path == "" {
		var err error
		path, err = defaultConfigPath()
		if err != nil {
			return &Config{}, nil
		}
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) && !explicit {
			return &Config{}, nil
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "load config %s", path)
	}
	return &cfg, nil
}

// defaultConfigPath returns the XDG config file location
// (~/.config/archigen/config.toml).
func defaultConfigPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// cacheDir returns the cache directory, preferring the configured
// value, then XDG standard (~/.cache/archigen/).
func cacheDir(cfg *Config) (string, error) {
	if cfg != nil && cfg.Cache.Dir != "" {
		return cfg.Cache.Dir, nil
	}
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
