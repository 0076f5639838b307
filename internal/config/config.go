package config

import (
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// DefaultMaxTracks is the playlist capacity used when none is configured.
	DefaultMaxTracks = 100
	// DefaultHistorySize is the undo history depth used when none is configured.
	DefaultHistorySize = 50
)

type Config struct {
	MaxTracks   int `koanf:"max_tracks"`   // playlist capacity
	HistorySize int `koanf:"history_size"` // undo/redo snapshots kept
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{
		MaxTracks:   DefaultMaxTracks,
		HistorySize: DefaultHistorySize,
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/setlist/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "setlist", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

// applyDefaults clamps nonsensical values back to defaults.
func (c *Config) applyDefaults() {
	if c.MaxTracks <= 0 {
		c.MaxTracks = DefaultMaxTracks
	}
	if c.HistorySize <= 0 {
		c.HistorySize = DefaultHistorySize
	}
}
