// Package config loads runtime settings for the hue-reflect commands.
//
// Sources are layered, later ones winning:
//  1. built-in defaults
//  2. an optional YAML file
//  3. HUE_REFLECT_* environment variables (HUE_REFLECT_WORKERS, HUE_REFLECT_LOG_LEVEL)
//
// Command-line flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
)

// EnvPrefix is the prefix of every environment variable read by Load.
const EnvPrefix = "HUE_REFLECT_"

// Config holds the tunable settings.
type Config struct {
	// Workers is the number of concurrent row workers. 0 means one per processor.
	Workers int `koanf:"workers"`

	// LogLevel is "info" or "debug".
	LogLevel string `koanf:"log_level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Workers:  0,
		LogLevel: "info",
	}
}

// Debug reports whether debug logging is enabled.
func (c *Config) Debug() bool {
	return strings.EqualFold(c.LogLevel, "debug")
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty or the file does not exist) and the environment. A file that
// exists but cannot be read or parsed is an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if path != "" {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			// file missing, fall through to defaults and environment
			log.Printf("config %s not found, using defaults", path)
		} else if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config %s: %w", path, err)
		}
	}

	envKey := func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if cfg.Workers < 0 {
		return nil, fmt.Errorf("workers must be >= 0, got %d", cfg.Workers)
	}

	return &cfg, nil
}
