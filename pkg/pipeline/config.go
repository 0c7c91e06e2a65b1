package pipeline

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/asciidag/pkg/errors"
)

// appName names the config and cache directories.
const appName = "asciidag"

// Config is the contents of the optional config file:
//
//	mode = "vertical"
//	formats = ["text", "svg"]
//	cache_ttl = "12h"
//	cache_dir = "/var/cache/asciidag"
//	redis_url = "redis://localhost:6379/0"
//	addr = ":8080"
//
// Command-line flags override every field.
type Config struct {
	Options

	CacheDir string `toml:"cache_dir"`
	RedisURL string `toml:"redis_url"`
	Addr     string `toml:"addr"`
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/asciidag/config.toml, or the
// platform equivalent.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, appName, "config.toml")
}

// LoadConfig reads the TOML config at path. A missing file is not an error
// when path is the default location (explicit is false); it yields an empty
// Config.
func LoadConfig(path string, explicit bool) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			if explicit {
				return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
			}
			return Config{}, nil
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, errors.New(errors.ErrCodeInvalidConfig, "config %s: unknown key %q", path, undecoded[0].String())
	}
	if cfg.RedisURL != "" {
		if err := errors.ValidateRedisURL(cfg.RedisURL); err != nil {
			return cfg, err
		}
	}
	if err := ValidateMode(cfg.Mode); err != nil {
		return cfg, err
	}
	if err := ValidateFormats(cfg.Formats); err != nil {
		return cfg, err
	}
	return cfg, nil
}
