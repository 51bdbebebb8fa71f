// Package config provides YAML-based configuration loading and difficulty
// presets for the snake simulation.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// EdgePolicy decides what happens when the head leaves the board.
type EdgePolicy string

const (
	EdgesOpen EdgePolicy = "open" // head keeps moving off-surface
	EdgesWrap EdgePolicy = "wrap" // head re-enters on the opposite edge
)

// SnakeConfig contains all configuration for the snake simulation.
type SnakeConfig struct {
	Board     SnakeBoard     `yaml:"board"`
	Timing    SnakeTiming    `yaml:"timing"`
	Start     SnakeStart     `yaml:"start"`
	Rules     SnakeRules     `yaml:"rules"`
	Placement SnakePlacement `yaml:"placement"`
	TestMode  SnakeTestMode  `yaml:"test_mode"`
	Theme     string         `yaml:"theme"` // optional theme file path
}

// SnakeBoard defines the drawing surface in units.
type SnakeBoard struct {
	Width  int        `yaml:"width"`
	Height int        `yaml:"height"`
	Tile   int        `yaml:"tile"`
	Margin int        `yaml:"margin"` // excluded from food placement on the right and bottom
	Edges  EdgePolicy `yaml:"edges"`
}

// SnakeTiming defines the render period and the step interval ramp.
type SnakeTiming struct {
	RenderInterval time.Duration `yaml:"render_interval"`
	StepInterval   time.Duration `yaml:"step_interval"`
	StepDecrement  time.Duration `yaml:"step_decrement"`
	StepFloor      time.Duration `yaml:"step_floor"`
	RampEvery      int           `yaml:"ramp_every"` // 0 disables the ramp
}

// SnakeStart defines initial entity positions in units.
type SnakeStart struct {
	HeadX int `yaml:"head_x"`
	HeadY int `yaml:"head_y"`
	FoodX int `yaml:"food_x"`
	FoodY int `yaml:"food_y"`
}

// SnakeRules toggles gameplay rules.
type SnakeRules struct {
	AllowReversal bool `yaml:"allow_reversal"`
}

// SnakePlacement bounds the random food placement.
type SnakePlacement struct {
	MaxAttempts int `yaml:"max_attempts"`
}

// SnakeTestMode pins the food and speeds up the ramp for deterministic play.
type SnakeTestMode struct {
	Enabled   bool `yaml:"enabled"`
	FoodX     int  `yaml:"food_x"`
	FoodY     int  `yaml:"food_y"`
	RampEvery int  `yaml:"ramp_every"`
}

// Columns returns how many whole tiles fit across the board.
func (b SnakeBoard) Columns() int {
	return b.Width / b.Tile
}

// Rows returns how many whole tiles fit down the board.
func (b SnakeBoard) Rows() int {
	return b.Height / b.Tile
}

// FoodColumns returns the number of tile columns food may be placed in.
func (b SnakeBoard) FoodColumns() int {
	return (b.Width - b.Margin) / b.Tile
}

// FoodRows returns the number of tile rows food may be placed in.
func (b SnakeBoard) FoodRows() int {
	return (b.Height - b.Margin) / b.Tile
}

// EffectiveRampEvery returns the ramp cadence, honouring test mode.
func (c SnakeConfig) EffectiveRampEvery() int {
	if c.TestMode.Enabled {
		return c.TestMode.RampEvery
	}
	return c.Timing.RampEvery
}

// Validate reports the first inconsistent setting.
func (c SnakeConfig) Validate() error {
	b := c.Board
	switch {
	case b.Tile <= 0:
		return invalid("board.tile must be positive, got %d", b.Tile)
	case b.Width < b.Tile || b.Height < b.Tile:
		return invalid("board %dx%d is smaller than one tile", b.Width, b.Height)
	case b.Margin < 0:
		return invalid("board.margin must not be negative")
	case b.FoodColumns() < 1 || b.FoodRows() < 1:
		return invalid("board.margin %d leaves no room for food", b.Margin)
	case b.Edges != EdgesOpen && b.Edges != EdgesWrap:
		return invalid("board.edges must be %q or %q, got %q", EdgesOpen, EdgesWrap, b.Edges)
	}

	t := c.Timing
	switch {
	case t.RenderInterval <= 0:
		return invalid("timing.render_interval must be positive")
	case t.StepInterval <= 0:
		return invalid("timing.step_interval must be positive")
	case t.StepDecrement < 0:
		return invalid("timing.step_decrement must not be negative")
	case t.StepFloor <= 0 || t.StepFloor > t.StepInterval:
		return invalid("timing.step_floor must be in (0, %v], got %v", t.StepInterval, t.StepFloor)
	case t.RampEvery < 0 || c.TestMode.RampEvery < 0:
		return invalid("ramp_every must not be negative")
	}

	if c.Placement.MaxAttempts < 0 {
		return invalid("placement.max_attempts must not be negative")
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("config: %w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}
