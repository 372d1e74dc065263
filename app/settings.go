// Copyright (c) 2025, The game-template-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Settings configures the window and the fly-camera controller.
type Settings struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	VSync  bool   `toml:"vsync"`

	Speed           float32 `toml:"speed"`
	Sensitivity     float32 `toml:"sensitivity"`
	AdjustableSpeed bool    `toml:"adjustable_speed"`
}

// DefaultSettings returns the settings used when no file is present.
func DefaultSettings() Settings {
	return Settings{
		Title:           "Game",
		Width:           1280,
		Height:          720,
		VSync:           true,
		Speed:           2,
		Sensitivity:     0.1,
		AdjustableSpeed: true,
	}
}

// LoadSettings reads a TOML settings file. A missing file is not an
// error: the defaults are returned. Fields absent from the file keep
// their default value.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("app: load settings: %w", err)
	}
	if err := toml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("app: load settings %s: %w", path, err)
	}
	return s, nil
}
