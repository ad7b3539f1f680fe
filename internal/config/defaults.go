package config

import (
	_ "embed"
)

//go:embed defaults/battleship.yaml
var defaultBattleshipYAML []byte

// DefaultBattleshipConfig returns the default (classic) battleship
// configuration.
func DefaultBattleshipConfig() BattleshipConfig {
	return BattleshipConfig{
		Grid: GridConfig{
			Size: 10,
		},
		Rules: RulesConfig{
			AdjacencyBuffer: false,
			CountPolicy:     "ships",
		},
		Fleet: []ShipConfig{
			{Name: "Carrier", Length: 5},
			{Name: "Battleship", Length: 4},
			{Name: "Cruiser", Length: 3},
			{Name: "Submarine", Length: 3},
			{Name: "Destroyer", Length: 2},
		},
		Pacing: PacingConfig{
			OpponentDelayTicks: 18,
			MessageTicks:       45,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultBattleshipYAML
}
