package config

import (
	_ "embed"
)

//go:embed defaults/puyo.yaml
var defaultPuyoYAML []byte

// DefaultPuyoConfig returns the built-in configuration.
// It mirrors defaults/puyo.yaml and is used when that cannot be parsed.
func DefaultPuyoConfig() PuyoConfig {
	return PuyoConfig{
		Timing: TimingConfig{
			TickRate:      60,
			SettleDelayMS: 300,
			FlashTicks:    12,
		},
		Theme: ThemeConfig{
			Pieces: []PieceStyle{
				{Name: "dog", Glyph: "()", Color: "bright_red"},
				{Name: "cat", Glyph: "<>", Color: "bright_green"},
				{Name: "rabbit", Glyph: "{}", Color: "bright_yellow"},
				{Name: "fox", Glyph: "[]", Color: "bright_blue"},
				{Name: "bear", Glyph: "@@", Color: "bright_magenta"},
			},
			ShowGhost:   true,
			BorderColor: "gray",
		},
		Storage: StorageConfig{
			DBPath: "~/.puyo/scores.db",
		},
	}
}
