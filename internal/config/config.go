// Package config loads the calculator's TOML configuration.
//
// Every key is optional; Default supplies a 300x400 window. Command-line
// flags are applied by the caller after Load returns.
package config

import (
	"sparkcalc/internal/errors"
	"sparkcalc/internal/logger"

	"github.com/BurntSushi/toml"
)

// RGB is a colour written as a three-element array in TOML.
type RGB [3]uint8

// Window controls the host window.
type Window struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Scale  int    `toml:"scale"`
	TPS    int    `toml:"tps"`
}

// Log controls the zap logger.
type Log struct {
	Level string `toml:"level"`
	JSON  bool   `toml:"json"`
}

// Theme holds the renderer palette.
type Theme struct {
	Background  RGB `toml:"background"`
	DisplayBG   RGB `toml:"display_bg"`
	DisplayFG   RGB `toml:"display_fg"`
	ButtonBG    RGB `toml:"button_bg"`
	ButtonFG    RGB `toml:"button_fg"`
	ButtonArmed RGB `toml:"button_armed"`
	OperatorBG  RGB `toml:"operator_bg"`
}

type Config struct {
	Window Window `toml:"window"`
	Log    Log    `toml:"log"`
	Theme  Theme  `toml:"theme"`
}

var ErrInvalid = errors.New("invalid config")

// Smallest frame the 5x4 grid still fits into with readable glyphs.
const (
	MinWidth  = 120
	MinHeight = 160
)

func Default() Config {
	return Config{
		Window: Window{
			Title:  "Simple Calculator",
			Width:  300,
			Height: 400,
			Scale:  2,
			TPS:    60,
		},
		Log: Log{Level: "info"},
		Theme: Theme{
			Background:  RGB{32, 32, 36},
			DisplayBG:   RGB{240, 240, 240},
			DisplayFG:   RGB{16, 16, 16},
			ButtonBG:    RGB{70, 72, 80},
			ButtonFG:    RGB{238, 238, 238},
			ButtonArmed: RGB{110, 140, 200},
			OperatorBG:  RGB{200, 120, 40},
		},
	}
}

// Load decodes path over Default. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrapf(err, "decode %s", path)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return Config{}, errors.WithHint(
			errors.Wrapf(ErrInvalid, "%s: unknown key %q", path, undec[0].String()),
			"valid tables are [window], [log] and [theme]",
		)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrapf(err, "%s", path)
	}
	return cfg, nil
}

// Validate reports the first out-of-range value.
func (c Config) Validate() error {
	w := c.Window
	if w.Width < MinWidth || w.Height < MinHeight {
		return errors.WithHintf(
			errors.Wrapf(ErrInvalid, "window %dx%d too small", w.Width, w.Height),
			"minimum is %dx%d", MinWidth, MinHeight,
		)
	}
	if w.Scale < 1 {
		return errors.Wrapf(ErrInvalid, "window scale %d", w.Scale)
	}
	if w.TPS < 1 {
		return errors.Wrapf(ErrInvalid, "window tps %d", w.TPS)
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return errors.Mark(errors.Wrap(err, "log level"), ErrInvalid)
	}
	return nil
}
