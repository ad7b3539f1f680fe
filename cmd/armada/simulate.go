package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-armada/internal/config"
	"github.com/vovakirdan/tui-armada/internal/games/battleship/core"
	"github.com/vovakirdan/tui-armada/internal/registry"
)

var (
	flagSimBattles int
	flagSimVariant string
	flagSimVerbose bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run headless computer-vs-computer battles",
	Long: `Runs a batch of battles with both fleets auto-placed and both sides
firing with the hunt/target gunner, then prints aggregate statistics.

Useful for sanity-checking rule configs and for comparing variants.

Examples:
  armada simulate
  armada simulate --battles 1000 --variant battleship_grand
  armada simulate --battles 10 --seed 42 --verbose`,
	Run: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimBattles, "battles", 100, "Number of battles to run")
	simulateCmd.Flags().StringVar(&flagSimVariant, "variant", "battleship", "Variant to simulate")
	simulateCmd.Flags().BoolVar(&flagSimVerbose, "verbose", false, "Log every battle")
}

// simulationRules builds the rules for a variant the same way a live game
// does: loaded config with the variant preset applied on top.
func simulationRules(gameID string) (core.Rules, error) {
	preset, ok := map[string]config.VariantPreset{
		"battleship":         config.VariantClassic,
		"battleship_compact": config.VariantCompact,
		"battleship_grand":   config.VariantGrand,
		"battleship_strict":  config.VariantStrict,
	}[gameID]
	if !ok {
		return core.Rules{}, fmt.Errorf("unknown variant %q", gameID)
	}

	cfg, err := config.LoadBattleship("")
	if err != nil {
		cfg = config.DefaultBattleshipConfig()
	}
	config.ApplyVariantPreset(&cfg, preset)

	policy := core.CountShips
	if cfg.Rules.CountPolicy == "cells" {
		policy = core.CountCells
	}
	roster := make([]core.Ship, len(cfg.Fleet))
	for i, s := range cfg.Fleet {
		roster[i] = core.Ship{Name: s.Name, Length: s.Length}
	}
	rules := core.Rules{
		GridSize:        cfg.Grid.Size,
		AdjacencyBuffer: cfg.Rules.AdjacencyBuffer,
		CountPolicy:     policy,
		Roster:          roster,
	}
	if err := rules.Validate(); err != nil {
		return core.Rules{}, err
	}
	return rules, nil
}

// battleResult is the outcome of one simulated battle.
type battleResult struct {
	firstWon bool
	shots    int
}

// simulateBattle plays one battle to completion. The side that moves first
// alternates shots with the second side until one fleet is sunk.
func simulateBattle(rules core.Rules, rng *rand.Rand) (battleResult, error) {
	first := core.NewSide(rules.GridSize)
	second := core.NewSide(rules.GridSize)

	if err := core.AutoPlace(rng, first.Ownership, first.Fleet, rules.Roster, rules.AdjacencyBuffer); err != nil {
		return battleResult{}, err
	}
	if err := core.AutoPlace(rng, second.Ownership, second.Fleet, rules.Roster, rules.AdjacencyBuffer); err != nil {
		return battleResult{}, err
	}

	firstGunner := core.NewGunner(rng)
	secondGunner := core.NewGunner(rng)

	shots := 0
	maxShots := 2 * rules.GridSize * rules.GridSize
	for shots < maxShots {
		firstGunner.TakeTurn(first.AttackMap, second.Ownership)
		shots++
		if second.Remaining(rules.CountPolicy) == 0 {
			return battleResult{firstWon: true, shots: shots}, nil
		}

		secondGunner.TakeTurn(second.AttackMap, first.Ownership)
		shots++
		if first.Remaining(rules.CountPolicy) == 0 {
			return battleResult{firstWon: false, shots: shots}, nil
		}
	}

	return battleResult{}, fmt.Errorf("battle did not terminate in %d shots", maxShots)
}

func runSimulate(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "armada-sim",
	})

	if !registry.Exists(flagSimVariant) {
		logger.Error("unknown variant", "variant", flagSimVariant)
		os.Exit(1)
	}
	if flagSimBattles < 1 {
		logger.Error("battle count must be positive", "battles", flagSimBattles)
		os.Exit(1)
	}

	rules, err := simulationRules(flagSimVariant)
	if err != nil {
		logger.Error("cannot build rules", "error", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	logger.Info("starting simulation",
		"variant", flagSimVariant,
		"battles", flagSimBattles,
		"grid", rules.GridSize,
		"ships", len(rules.Roster),
		"seed", seed,
	)

	start := time.Now()
	firstWins := 0
	totalShots := 0
	minShots, maxShots := 0, 0

	for i := 0; i < flagSimBattles; i++ {
		result, err := simulateBattle(rules, rng)
		if err != nil {
			logger.Error("battle failed", "battle", i+1, "error", err)
			os.Exit(1)
		}

		if result.firstWon {
			firstWins++
		}
		totalShots += result.shots
		if minShots == 0 || result.shots < minShots {
			minShots = result.shots
		}
		if result.shots > maxShots {
			maxShots = result.shots
		}

		if flagSimVerbose {
			winner := "second"
			if result.firstWon {
				winner = "first"
			}
			logger.Info("battle finished", "battle", i+1, "winner", winner, "shots", result.shots)
		}
	}

	elapsed := time.Since(start)
	logger.Info("simulation finished",
		"battles", flagSimBattles,
		"first_wins", firstWins,
		"second_wins", flagSimBattles-firstWins,
		"avg_shots", float64(totalShots)/float64(flagSimBattles),
		"min_shots", minShots,
		"max_shots", maxShots,
		"elapsed", elapsed.Round(time.Millisecond),
	)
}
