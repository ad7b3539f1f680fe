// Package config provides YAML-based variant configuration loading for the
// armada platform.
package config

// BattleshipConfig contains all configuration for a battleship variant.
type BattleshipConfig struct {
	Grid   GridConfig   `yaml:"grid"`
	Rules  RulesConfig  `yaml:"rules"`
	Fleet  []ShipConfig `yaml:"fleet"`
	Pacing PacingConfig `yaml:"pacing"`
}

// GridConfig defines the board geometry.
type GridConfig struct {
	Size int `yaml:"size"`
}

// RulesConfig defines the variant rule switches.
type RulesConfig struct {
	// AdjacencyBuffer enforces a one-cell gap between ships during
	// placement (the strict variant's rule).
	AdjacencyBuffer bool `yaml:"adjacency_buffer"`

	// CountPolicy selects the ships-remaining computation: "ships" counts
	// distinct ships with un-hit cells, "cells" counts raw ship cells.
	CountPolicy string `yaml:"count_policy"`
}

// ShipConfig is one roster entry. Ships are placed in list order.
type ShipConfig struct {
	Name   string `yaml:"name"`
	Length int    `yaml:"length"`
}

// PacingConfig defines user-feedback pacing in simulation ticks.
type PacingConfig struct {
	// OpponentDelayTicks is how long the enemy "thinks" before firing.
	OpponentDelayTicks int `yaml:"opponent_delay_ticks"`

	// MessageTicks is how long a status flash stays on screen.
	MessageTicks int `yaml:"message_ticks"`
}

// VariantPreset represents a named rule set.
type VariantPreset string

const (
	VariantClassic VariantPreset = "classic"
	VariantCompact VariantPreset = "compact"
	VariantGrand   VariantPreset = "grand"
	VariantStrict  VariantPreset = "strict"
)

// ApplyVariantPreset overrides grid size, fleet and rules for a preset.
// The classic preset leaves the loaded config untouched.
func ApplyVariantPreset(cfg *BattleshipConfig, preset VariantPreset) {
	switch preset {
	case VariantCompact:
		cfg.Grid.Size = 8
		cfg.Rules.AdjacencyBuffer = false
		cfg.Fleet = []ShipConfig{
			{Name: "Battleship", Length: 4},
			{Name: "Cruiser", Length: 3},
			{Name: "Submarine", Length: 3},
			{Name: "Destroyer", Length: 2},
		}
	case VariantGrand:
		cfg.Grid.Size = 12
		cfg.Rules.AdjacencyBuffer = false
		cfg.Fleet = []ShipConfig{
			{Name: "Carrier", Length: 5},
			{Name: "Battleship", Length: 4},
			{Name: "Cruiser", Length: 3},
			{Name: "Submarine", Length: 3},
			{Name: "Destroyer", Length: 2},
			{Name: "Frigate", Length: 2},
			{Name: "Patrol Boat", Length: 1},
		}
	case VariantStrict:
		cfg.Rules.AdjacencyBuffer = true
	}
}
