package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-puyo/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available games with their best scores",
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No games registered.")
		return
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		Headers("ID", "Title", "Best")
	for _, g := range games {
		best := "-"
		if store != nil {
			if hs, err := store.HighScore(g.ID); err == nil && hs > 0 {
				best = strconv.Itoa(hs)
			}
		}
		t.Row(g.ID, g.Title, best)
	}
	fmt.Println(t.Render())
	fmt.Println("Run 'puyo play <id>' to play.")
}
