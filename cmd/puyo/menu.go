package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-puyo/internal/platform/tui"
	"github.com/vovakirdan/tui-puyo/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the title menu",
	Long: `Start in interactive menu mode.

Pick a game or the high score table. After a game ends, Esc returns
to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit

Examples:
  puyo menu
  puyo menu --fps 30
  puyo menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	for {
		result, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		switch {
		case result.Quit:
			return nil

		case result.WantsScoreboard:
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue

		case result.GameID == "":
			return nil
		}

		game, err := registry.Create(result.GameID)
		if err != nil {
			return fmt.Errorf("creating game: %w", err)
		}
		logger.Debug("game selected", "game", result.GameID)

		// Esc after game over or while paused returns here
		back, err := tui.RunGame(game, store, cfg, tui.Embedded(), tui.WithLogger(logger))
		if err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		if !back {
			return nil
		}
	}
}
