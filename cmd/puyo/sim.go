package main

import (
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-puyo/internal/sim"
)

var (
	flagSimGames     int
	flagSimWorkers   int
	flagSimMaxPieces int
	flagSimPolicy    string
	flagSimQuiet     bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Play headless games with a bot and report statistics",
	Long: `Play many games without a screen using a placement bot, then print
score and chain statistics. Chains resolve instantly. Results depend
only on --seed, --games, --max-pieces and --policy, never on --workers.

Policies:
  greedy  - Try every column and rotation, keep the best-looking one
  random  - Place pairs at random

Examples:
  puyo sim
  puyo sim --games 1000 --seed 7
  puyo sim --policy random --max-pieces 200`,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimGames, "games", 100, "Number of games to play")
	simCmd.Flags().IntVar(&flagSimWorkers, "workers", 0, "Games played in parallel (0 = one per CPU)")
	simCmd.Flags().IntVar(&flagSimMaxPieces, "max-pieces", 0, "Stop each game after this many pairs (0 = until game over)")
	simCmd.Flags().StringVar(&flagSimPolicy, "policy", "greedy", "Placement policy: greedy or random")
	simCmd.Flags().BoolVar(&flagSimQuiet, "quiet", false, "Hide the progress bar")
}

func runSim(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	opts := sim.Options{
		Games:     flagSimGames,
		Workers:   flagSimWorkers,
		Seed:      seed,
		MaxPieces: flagSimMaxPieces,
		Policy:    flagSimPolicy,
		Logger:    logger,
	}
	if !flagSimQuiet {
		opts.Progress = os.Stderr
	}

	logger.Debug("simulation starting", "games", opts.Games, "seed", seed, "policy", opts.Policy)
	report, err := sim.Run(ctx, opts)
	if err != nil {
		return err
	}
	return report.Write(os.Stdout)
}
