// Package config loads address book settings from the environment and
// layers command-line flags on top.
package config

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"

	"addressbook/internal/logger"
	"addressbook/internal/storage"
)

// EnvPrefix namespaces every environment variable read by [ParseEnv].
const EnvPrefix = "ADDRESSBOOK_"

// Config holds the address book configuration.
type Config struct {
	Path string         `env:"PATH" envDefault:"contacts/contacts.json"`
	Log  logger.Options `envPrefix:"LOG_"`
}

// ParseEnv loads configuration from ADDRESSBOOK_* environment variables.
func ParseEnv(target *Config) error {
	if target == nil {
		return errors.New("config target is required")
	}
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Parse loads the environment into a Config and then parses args with fs.
// Flags override environment values. The remaining positional arguments are
// available from fs.Args().
func Parse(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if fs == nil {
		return Config{}, errors.New("flag parser is required")
	}

	fs.StringVar(&cfg.Path, "file", cfg.Path, "Path of the contacts JSON file")
	fs.StringVar(&cfg.Log.Level, "log-level", cfg.Log.Level, "Log from debug, info, warn or error")
	fs.StringVar(&cfg.Log.File, "log-file", cfg.Log.File, "Append logs to file")
	fs.StringVar(&cfg.Log.Format, "log-format", cfg.Log.Format, "Format logs as text or json")

	if args == nil {
		args = []string{}
	}
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg.Path = strings.TrimSpace(cfg.Path)
	if cfg.Path == "" {
		cfg.Path = storage.DefaultPath
	}
	return cfg, nil
}
