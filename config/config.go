// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration of GUI pages,
// loaded from TOML files over the defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"cogentcore.org/gamegui/base/iox/tomlx"
	"cogentcore.org/gamegui/base/logx"
	"github.com/jinzhu/copier"
)

// Config is the main config struct.
type Config struct {

	// DefaultFont is the font used by objects without a font setting.
	DefaultFont string `toml:"default_font"`

	// ScreenWidth is the width of the screen in pixels.
	ScreenWidth float32 `toml:"screen_width"`

	// ScreenHeight is the height of the screen in pixels.
	ScreenHeight float32 `toml:"screen_height"`

	// PageDirs are the directories searched for page files,
	// in order.
	PageDirs []string `toml:"page_dirs"`

	// SoundDir is the directory of WAV sounds, named by their file
	// name without extension. Empty disables sound.
	SoundDir string `toml:"sound_dir"`

	// SpriteDir is the directory of PNG sprites, named by their file
	// name without extension.
	SpriteDir string `toml:"sprite_dir"`

	// LogLevel is the logging level: debug, info, warn or error.
	LogLevel string `toml:"log_level"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		DefaultFont:  "default",
		ScreenWidth:  1024,
		ScreenHeight: 768,
		PageDirs:     []string{"."},
		LogLevel:     "warn",
	}
}

// Open reads the given TOML config file, with the values it sets
// overriding those of [Default].
func Open(filename string) (*Config, error) {
	var file Config
	if err := tomlx.Open(&file, filename); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	c := Default()
	if err := copier.CopyWithOption(c, &file, copier.Option{IgnoreEmpty: true, DeepCopy: true}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if _, ok := logx.LevelFromString(c.LogLevel); !ok {
		return nil, fmt.Errorf("config: invalid log_level %q", c.LogLevel)
	}
	return c, nil
}

// Level returns the logging level of LogLevel.
func (c *Config) Level() slog.Level {
	lv, _ := logx.LevelFromString(c.LogLevel)
	return lv
}

// FindPage returns the path of the first file with the given name in
// PageDirs. Absolute names are returned as they are.
func (c *Config) FindPage(name string) (string, error) {
	if filepath.IsAbs(name) {
		return name, nil
	}
	for _, dir := range c.PageDirs {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: page %q not found in %v: %w", name, c.PageDirs, fs.ErrNotExist)
}

// ErrNoConfig is returned by [Find] when no config file exists.
var ErrNoConfig = errors.New("config: no config file")

// Find returns the first of the given config files that exists.
func Find(filenames ...string) (string, error) {
	for _, fn := range filenames {
		if _, err := os.Stat(fn); err == nil {
			return fn, nil
		}
	}
	return "", ErrNoConfig
}
