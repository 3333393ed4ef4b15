// Package config provides YAML-based match configuration loading and
// preset management for battleship.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-battleship/internal/battle"
)

// ErrInvalidConfig is returned when a loaded configuration cannot drive a match.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config contains all match configuration. It is fixed at match start.
type Config struct {
	Board     BoardConfig     `yaml:"board"`
	Fleet     []ShipClass     `yaml:"fleet"`
	Placement PlacementConfig `yaml:"placement"`
	AI        AIConfig        `yaml:"ai"`
}

// BoardConfig defines the grid.
type BoardConfig struct {
	Size int `yaml:"size"`
}

// ShipClass is a (length, count) pair of the fleet composition.
type ShipClass struct {
	Length int `yaml:"length"`
	Count  int `yaml:"count"`
}

// PlacementConfig tunes the random fleet generator.
type PlacementConfig struct {
	MaxAttempts int `yaml:"max_attempts"` // Attempt budget per generation pass
}

// AIConfig tunes the automated side's presentation.
type AIConfig struct {
	DelayMS int `yaml:"delay_ms"` // Pause before each automated shot in the TUI
}

// Rules converts the configuration to game rules.
func (c Config) Rules() battle.Rules {
	fleet := make(battle.Fleet, len(c.Fleet))
	for i, sc := range c.Fleet {
		fleet[i] = battle.ShipClass{Length: sc.Length, Count: sc.Count}
	}
	return battle.Rules{
		Size:        c.Board.Size,
		Fleet:       fleet,
		MaxAttempts: c.Placement.MaxAttempts,
	}
}

// AIDelay returns the automated shot delay as a duration.
func (c Config) AIDelay() time.Duration {
	return time.Duration(c.AI.DelayMS) * time.Millisecond
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if err := c.Rules().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.AI.DelayMS < 0 {
		return fmt.Errorf("%w: negative ai delay %d", ErrInvalidConfig, c.AI.DelayMS)
	}
	return nil
}

// Preset represents a named rule set.
type Preset string

const (
	PresetClassic  Preset = "classic"
	PresetSkirmish Preset = "skirmish"
	PresetExtended Preset = "extended"
)

// Presets lists the known presets.
func Presets() []Preset {
	return []Preset{PresetClassic, PresetSkirmish, PresetExtended}
}

// ApplyPreset overwrites the board, fleet and budget with a preset.
// The AI delay is kept. An empty preset leaves cfg unchanged.
func ApplyPreset(cfg *Config, preset Preset) error {
	switch preset {
	case "":
		return nil
	case PresetClassic:
		d := DefaultConfig()
		cfg.Board, cfg.Fleet, cfg.Placement = d.Board, d.Fleet, d.Placement
	case PresetSkirmish:
		cfg.Board.Size = 5
		cfg.Fleet = []ShipClass{{Length: 3, Count: 1}, {Length: 2, Count: 1}, {Length: 1, Count: 2}}
		cfg.Placement.MaxAttempts = 1000
	case PresetExtended:
		cfg.Board.Size = 8
		cfg.Fleet = []ShipClass{{Length: 3, Count: 2}, {Length: 2, Count: 3}, {Length: 1, Count: 4}}
		cfg.Placement.MaxAttempts = 2000
	default:
		return fmt.Errorf("config: unknown preset %q", preset)
	}
	return nil
}
