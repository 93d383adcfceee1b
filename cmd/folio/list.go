package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/folio-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows every registered game with its pacing.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %-12s  %s\n", maxIDLen, "ID", "Title", "Pace")
	fmt.Printf("  %-*s  %-12s  %s\n", maxIDLen, "--", "-----", "----")

	cfg := runtimeConfig()
	for _, g := range games {
		pace := "turn-based"
		if game, err := registry.Create(g.ID); err == nil {
			game.Reset(cfg)
			if d := game.TickInterval(); d > 0 {
				pace = fmt.Sprintf("every %v", d)
			}
		}
		fmt.Printf("  %-*s  %-12s  %s\n", maxIDLen, g.ID, g.Title, pace)
	}

	fmt.Println()
	fmt.Println("Run 'folio play <id>' to play a game.")
}
