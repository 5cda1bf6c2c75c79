// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

// Package config loads the shell's settings from a TOML or YAML file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config holds the shell settings. Surface fields are read once when the
// session is created; only LogLevel is applied on reload.
type Config struct {
	LibraryDir   string  `toml:"library_dir" yaml:"library_dir"`
	LibraryName  string  `toml:"library_name" yaml:"library_name"`
	MaxFrameRate int32   `toml:"max_frame_rate" yaml:"max_frame_rate"`
	PixelScale   float64 `toml:"pixel_scale" yaml:"pixel_scale"`
	Width        int     `toml:"width" yaml:"width"`
	Height       int     `toml:"height" yaml:"height"`
	Title        string  `toml:"title" yaml:"title"`
	LogLevel     string  `toml:"log_level" yaml:"log_level"`
	LogFile      string  `toml:"log_file" yaml:"log_file"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		MaxFrameRate: 60,
		Width:        390,
		Height:       844,
		Title:        "nativeshell",
		LogLevel:     "info",
		LogFile:      "logs.log",
	}
}

// Load reads path over the defaults, applies environment overrides and
// validates the result. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg, err := loadFile(path)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	return cfg, nil
}

func loadFile(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("decode YAML: %w", err)
		}
	default:
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("decode TOML: %w", err)
		}
	}
	return cfg, nil
}

// ApplyEnvOverrides applies NATIVESHELL_* environment variables.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("NATIVESHELL_LIBRARY_DIR"); v != "" {
		c.LibraryDir = v
	}
	if v := os.Getenv("NATIVESHELL_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("NATIVESHELL_MAX_FRAME_RATE"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 32); err == nil {
			c.MaxFrameRate = int32(n)
		}
	}
}

// Validate checks the settings.
func (c *Config) Validate() error {
	var errs []error
	if c.MaxFrameRate <= 0 {
		errs = append(errs, fmt.Errorf("max_frame_rate must be positive, got %d", c.MaxFrameRate))
	}
	if c.PixelScale < 0 {
		errs = append(errs, fmt.Errorf("pixel_scale must not be negative, got %g", c.PixelScale))
	}
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Width, c.Height))
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Level returns the parsed log level.
func (c *Config) Level() slog.Level {
	l, _ := ParseLevel(c.LogLevel)
	return l
}

// ParseLevel parses debug, info, warn or error. Empty means info.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if s == "" {
		return slog.LevelInfo, nil
	}
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level: %w", err)
	}
	return l, nil
}
