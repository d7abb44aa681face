// Package config loads the game configuration from YAML files with
// environment overrides. Rule constants (well size, scoring, level curve)
// are fixed in the engine and deliberately absent here.
package config

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"
)

// PuyoConfig contains everything that can be tuned without changing the rules.
type PuyoConfig struct {
	Timing  TimingConfig  `yaml:"timing"`
	Theme   ThemeConfig   `yaml:"theme"`
	Storage StorageConfig `yaml:"storage"`
}

// TimingConfig controls pacing.
type TimingConfig struct {
	TickRate      int `yaml:"tick_rate" env:"PUYO_TICK_RATE"`             // Simulation ticks per second
	SettleDelayMS int `yaml:"settle_delay_ms" env:"PUYO_SETTLE_DELAY_MS"` // Pause on each side of gravity during a chain
	FlashTicks    int `yaml:"flash_ticks" env:"PUYO_FLASH_TICKS"`         // How long cleared cells stay highlighted
}

// SettleDelay returns the settle delay as a duration.
func (t TimingConfig) SettleDelay() time.Duration {
	return time.Duration(t.SettleDelayMS) * time.Millisecond
}

// ThemeConfig controls how pieces look.
type ThemeConfig struct {
	Pieces      []PieceStyle `yaml:"pieces"` // One entry per kind: dog, cat, rabbit, fox, bear
	ShowGhost   bool         `yaml:"show_ghost" env:"PUYO_SHOW_GHOST"`
	BorderColor string       `yaml:"border_color"`
}

// PieceStyle is the glyph and color for one kind.
type PieceStyle struct {
	Name  string `yaml:"name"`
	Glyph string `yaml:"glyph"` // Exactly two runes; each cell is two columns wide
	Color string `yaml:"color"`
}

// StorageConfig controls score persistence.
type StorageConfig struct {
	DBPath string `yaml:"db_path" env:"PUYO_DB"`
}

// Validate reports every problem in the configuration.
func (c PuyoConfig) Validate() error {
	var errs []error
	if c.Timing.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("timing.tick_rate must be positive, got %d", c.Timing.TickRate))
	}
	if c.Timing.SettleDelayMS < 0 {
		errs = append(errs, fmt.Errorf("timing.settle_delay_ms must not be negative, got %d", c.Timing.SettleDelayMS))
	}
	if c.Timing.FlashTicks < 0 {
		errs = append(errs, fmt.Errorf("timing.flash_ticks must not be negative, got %d", c.Timing.FlashTicks))
	}
	for i, p := range c.Theme.Pieces {
		if n := utf8.RuneCountInString(p.Glyph); n != 2 {
			errs = append(errs, fmt.Errorf("theme.pieces[%d].glyph %q must be 2 characters, got %d", i, p.Glyph, n))
		}
	}
	return errors.Join(errs...)
}
