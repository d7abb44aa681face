// puyo is a falling-pair puzzle for the terminal: drop pairs of animals,
// connect four of a kind to clear them, and build chains.
//
// Usage:
//
//	puyo play                - Play a game
//	puyo menu                - Title menu with high scores
//	puyo serve               - Start SSH server for remote play
//	puyo scores              - Show high scores
//	puyo sim                 - Play headless games with a bot and report
//	puyo list                - List available games
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default from config: 60)
//	--seed <value>    - Set RNG seed for reproducible gameplay
//	--db <path>       - Set database path (default: ~/.puyo/scores.db)
//	--config <path>   - Load a custom config YAML
//	--debug           - Log debug output
//	--log-file <path> - Write logs to a file instead of stderr
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-puyo/internal/config"
	"github.com/vovakirdan/tui-puyo/internal/games/puyo"
	"github.com/vovakirdan/tui-puyo/internal/storage"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagDebug   bool
	flagLogFile string
)

// Set up by the root command before any subcommand runs.
var (
	appConfig config.PuyoConfig
	logger    *log.Logger
	logFile   *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "puyo",
	Short: "Puyo Pop - a falling-pair puzzle in your terminal",
	Long: `Puyo Pop drops pairs of animals into a well. Connect four or more of
the same kind to clear them; whatever falls into the gaps may clear
again and build a chain.

Available commands:
  play     - Play a game directly
  menu     - Title menu with high scores
  serve    - Start SSH server for remote play
  scores   - View high scores
  sim      - Benchmark a bot over many games

Examples:
  puyo play
  puyo play --seed 42
  puyo menu
  puyo serve --ssh :2222
  puyo sim --games 500`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log debug output")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
}

// setup loads the configuration, builds the logger and hands both to the
// game package. Flags given on the command line win over the config file.
func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.Timing.TickRate = flagFPS
	}
	if flags.Changed("db") {
		cfg.Storage.DBPath = flagDBPath
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	if err := setupLogger(); err != nil {
		return err
	}

	appConfig = cfg
	puyo.Configure(cfg)
	puyo.SetLogger(logger)
	logger.Debug("config loaded", "tick_rate", cfg.Timing.TickRate, "db", cfg.Storage.DBPath)
	return nil
}

func setupLogger() error {
	out := os.Stderr
	if flagLogFile != "" {
		path, err := storage.ExpandPath(flagLogFile)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile, out = f, f
	}

	logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "puyo",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return nil
}

// openStore opens the scores database. A failure only disables saving.
func openStore() *storage.Store {
	store, err := storage.Open(appConfig.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", appConfig.Storage.DBPath, "error", err)
		return nil
	}
	return store
}
