package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-armada/internal/registry"
	"github.com/vovakirdan/tui-armada/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <variant>",
	Short: "Show battle history for a variant",
	Long: `Shows the best recorded battles for the given variant along with
aggregate statistics.

Examples:
  armada scores battleship
  armada scores battleship_grand --db ./battles.db`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'armada list' to see available variants.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not open battles database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	battles, err := store.BestBattles(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not read battles: %v\n", err)
		os.Exit(1)
	}

	if len(battles) == 0 {
		fmt.Printf("No battles recorded for %q yet.\n", gameID)
		fmt.Println("Play a battle to make history!")
		return
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not read stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Battle honors for %s:\n", gameID)
	fmt.Println()
	fmt.Printf("  %-5s  %-7s  %-7s  %-6s  %-5s  %s\n", "Rank", "Score", "Result", "Shots", "Acc%", "Date")
	fmt.Printf("  %-5s  %-7s  %-7s  %-6s  %-5s  %s\n", "----", "-----", "------", "-----", "----", "----")

	for i, b := range battles {
		result := "loss"
		if b.Won {
			result = "WIN"
		}
		fmt.Printf("  %-5d  %-7d  %-7s  %-6d  %-5.0f  %s\n",
			i+1, b.Score, result, b.Shots, b.Accuracy(), b.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Printf("  Battles: %d   Wins: %d   High score: %d   Accuracy: %.0f%%\n",
		stats.Battles, stats.Wins, stats.HighScore, stats.Accuracy())
}
