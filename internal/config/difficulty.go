package config

import "time"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset maps a name to a preset. Unknown names yield ok=false.
func ParsePreset(name string) (DifficultyPreset, bool) {
	for _, p := range Presets {
		if string(p) == name {
			return p, true
		}
	}
	return "", false
}

// StepIntervalForPreset returns the starting step interval for a preset.
func StepIntervalForPreset(preset DifficultyPreset) time.Duration {
	switch preset {
	case DifficultyEasy:
		return time.Second
	case DifficultyHard:
		return 500 * time.Millisecond
	default:
		return 750 * time.Millisecond
	}
}

// IsFixedPreset returns true if the preset disables the speed ramp.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplySnakePreset modifies the config based on a difficulty preset.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Timing.StepInterval = StepIntervalForPreset(preset)
	if cfg.Timing.StepFloor > cfg.Timing.StepInterval {
		cfg.Timing.StepFloor = cfg.Timing.StepInterval
	}
	if IsFixedPreset(preset) {
		cfg.Timing.RampEvery = 0
		cfg.TestMode.RampEvery = 0
	}
}
