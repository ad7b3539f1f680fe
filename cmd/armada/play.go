package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-armada/internal/core"
	"github.com/vovakirdan/tui-armada/internal/games/battleship"
	"github.com/vovakirdan/tui-armada/internal/platform/tui"
	"github.com/vovakirdan/tui-armada/internal/registry"
	"github.com/vovakirdan/tui-armada/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play <variant>",
	Short: "Play a battle variant",
	Long: `Start a battle with the specified variant.

Controls:
  Arrows/WASD  - Move the cursor
  R            - Rotate ship during placement
  Enter/Space  - Place ship / fire
  N            - New battle (after game over)
  P            - Pause
  Q/Ctrl+C     - Quit

Examples:
  armada play battleship
  armada play battleship_grand
  armada play battleship_strict --config ./my-rules.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom rules config YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'armada list' to see available variants.")
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Custom rules apply to all variants
	battleship.SetConfigPath(flagConfig)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open battle storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open battles database: %v\n", err)
		// Continue without storage - the battle still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
