package config

import (
	_ "embed"
)

//go:embed defaults/battleship.yaml
var defaultYAML []byte

// DefaultConfig returns the default configuration: the classic 6x6 board.
func DefaultConfig() Config {
	return Config{
		Board: BoardConfig{Size: 6},
		Fleet: []ShipClass{
			{Length: 3, Count: 1},
			{Length: 2, Count: 2},
			{Length: 1, Count: 4},
		},
		Placement: PlacementConfig{MaxAttempts: 1000},
		AI:        AIConfig{DelayMS: 600},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
