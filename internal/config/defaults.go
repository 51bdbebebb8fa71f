package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the hardcoded snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: SnakeBoard{
			Width:  599,
			Height: 404,
			Tile:   32,
			Margin: 64,
			Edges:  EdgesOpen,
		},
		Timing: SnakeTiming{
			RenderInterval: 33 * time.Millisecond,
			StepInterval:   750 * time.Millisecond,
			StepDecrement:  50 * time.Millisecond,
			StepFloor:      50 * time.Millisecond,
			RampEvery:      4,
		},
		Start: SnakeStart{
			FoodX: 32,
			FoodY: 32,
		},
		Rules: SnakeRules{
			AllowReversal: true,
		},
		Placement: SnakePlacement{
			MaxAttempts: 256,
		},
		TestMode: SnakeTestMode{
			FoodX:     64,
			FoodY:     64,
			RampEvery: 1,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a config file name
// ("snake"), or nil if none is embedded.
func GetDefaultYAML(name string) []byte {
	switch name {
	case "snake":
		return defaultSnakeYAML
	default:
		return nil
	}
}
