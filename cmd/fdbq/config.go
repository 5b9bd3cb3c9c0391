package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is read from the TOML file named by --config. Command-line flags
// override it.
type Config struct {
	Database          string `toml:"database"`
	SnapshotCache     string `toml:"snapshot_cache"`
	Prefault          bool   `toml:"prefault"`
	BehaviorCacheSize int    `toml:"behavior_cache_size"`
	LogLevel          string `toml:"log_level"`
}

func loadConfig(path string) (*Config, error) {
	cfg := &Config{LogLevel: "warn"}
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return nil, fmt.Errorf("config %s: unknown key %s", path, undec[0])
	}
	return cfg, nil
}

func (cfg *Config) logLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return 0, fmt.Errorf("log level: %w", err)
	}
	return level, nil
}

func (cfg *Config) logger() (*slog.Logger, error) {
	level, err := cfg.logLevel()
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})), nil
}
