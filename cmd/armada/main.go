// armada is a TUI naval battle platform for the terminal.
//
// Usage:
//
//	armada list                - List available battle variants
//	armada play <variant>      - Play a variant
//	armada menu                - Start menu to pick variants interactively
//	armada serve               - Start SSH server for remote play
//	armada scores <variant>    - Show battle history for a variant
//	armada simulate            - Run headless computer-vs-computer battles
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible battles
//	--db <path>     - Set database path (default: ~/.armada/battles.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game package to register the variants
	_ "github.com/vovakirdan/tui-armada/internal/games/battleship"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "armada",
	Short: "Armada - Naval battles in your terminal",
	Long: `Armada is a terminal-based battleship platform. Deploy your fleet,
hunt the enemy's ships and survive their return fire.

Available commands:
  list     - Show all battle variants
  play     - Play a specific variant directly
  menu     - Interactive variant picker menu
  serve    - Start SSH server for remote play
  scores   - View battle history
  simulate - Run headless computer-vs-computer battles

Examples:
  armada list
  armada play battleship
  armada menu
  armada serve --ssh :2222
  armada scores battleship
  armada simulate --battles 100`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.armada/battles.db", "Path to battles database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
}
