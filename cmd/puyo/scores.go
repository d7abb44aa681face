package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-puyo/internal/games/puyo"
	"github.com/vovakirdan/tui-puyo/internal/registry"
	"github.com/vovakirdan/tui-puyo/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Display the top high scores and lifetime stats.

Examples:
  puyo scores
  puyo scores --limit 25
  puyo scores --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all stored scores for the game")
}

var scoresHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

func runScores(_ *cobra.Command, args []string) error {
	gameID := puyo.GameID
	if len(args) == 1 {
		gameID = args[0]
	}
	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w, run 'puyo list' to see available games", err)
	}

	store, err := storage.Open(appConfig.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return fmt.Errorf("clearing scores: %w", err)
		}
		fmt.Printf("Cleared scores for %s.\n", game.Title())
		return nil
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Println(scoresHeaderStyle.Render("High Scores - " + game.Title()))
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'puyo play' to set the first high score!")
		return nil
	}

	fmt.Println(scoreTable(scores).Render())

	stats, err := store.GetGameStats(gameID)
	if err == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Games: %d   Best: %d   Average: %.0f   Best chain: %d   Best level: %d\n",
			stats.GamesCount, stats.HighScore, stats.AvgScore, stats.BestChain, stats.BestLevel)
	}
	return nil
}

func scoreTable(scores []storage.ScoreEntry) *table.Table {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("Rank", "Score", "Level", "Chain", "Cleared", "Pairs", "Date")
	for i, s := range scores {
		t.Row(
			strconv.Itoa(i+1),
			strconv.Itoa(s.Score),
			strconv.Itoa(s.Level),
			strconv.Itoa(s.MaxChain),
			strconv.Itoa(s.Cleared),
			strconv.Itoa(s.Pieces),
			s.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	return t
}
