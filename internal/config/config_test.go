package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedMatchesDefaults(t *testing.T) {
	cfg := DefaultSnakeConfig()
	var embedded SnakeConfig
	if err := yaml.Unmarshal(GetDefaultYAML("snake"), &embedded); err != nil {
		t.Fatalf("embedded snake.yaml does not parse: %v", err)
	}
	if embedded != cfg {
		t.Errorf("embedded config = %+v\nexpected %+v", embedded, cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
	if GetDefaultYAML("pong") != nil {
		t.Error("unknown names should have no embedded YAML")
	}
}

func TestLoadSnakeCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snake.yaml")
	data := []byte("board:\n  edges: wrap\ntiming:\n  step_interval: 1s\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake() error: %v", err)
	}
	if cfg.Board.Edges != EdgesWrap {
		t.Errorf("Edges = %q, expected wrap", cfg.Board.Edges)
	}
	if cfg.Timing.StepInterval != time.Second {
		t.Errorf("StepInterval = %v, expected 1s", cfg.Timing.StepInterval)
	}
	// Keys not present keep their defaults.
	if cfg.Board.Tile != 32 || !cfg.Rules.AllowReversal || cfg.Placement.MaxAttempts != 256 {
		t.Errorf("missing keys lost defaults: %+v", cfg)
	}
}

func TestLoadSnakeErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadSnake(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadSnake with unreadable custom path should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	os.WriteFile(bad, []byte("board: [1, 2"), 0o644)
	if _, err := LoadSnake(bad); err == nil {
		t.Error("LoadSnake with malformed YAML should fail")
	}

	invalidTile := filepath.Join(dir, "tile.yaml")
	os.WriteFile(invalidTile, []byte("board:\n  tile: 0\n"), 0o644)
	if _, err := LoadSnake(invalidTile); !errors.Is(err, ErrInvalid) {
		t.Errorf("LoadSnake with tile 0 = %v, expected ErrInvalid", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SnakeConfig)
	}{
		{"zero tile", func(c *SnakeConfig) { c.Board.Tile = 0 }},
		{"tiny board", func(c *SnakeConfig) { c.Board.Width = 10 }},
		{"margin eats board", func(c *SnakeConfig) { c.Board.Margin = 599 }},
		{"unknown edges", func(c *SnakeConfig) { c.Board.Edges = "bounce" }},
		{"zero render", func(c *SnakeConfig) { c.Timing.RenderInterval = 0 }},
		{"floor above interval", func(c *SnakeConfig) { c.Timing.StepFloor = time.Hour }},
		{"negative attempts", func(c *SnakeConfig) { c.Placement.MaxAttempts = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestBoardGeometry(t *testing.T) {
	b := DefaultSnakeConfig().Board
	if b.FoodColumns() != 16 || b.FoodRows() != 10 {
		t.Errorf("food grid = %dx%d, expected 16x10", b.FoodColumns(), b.FoodRows())
	}
	if b.Columns() != 18 || b.Rows() != 12 {
		t.Errorf("board grid = %dx%d, expected 18x12", b.Columns(), b.Rows())
	}
}

func TestApplySnakePreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		interval  time.Duration
		rampEvery int
	}{
		{DifficultyEasy, time.Second, 4},
		{DifficultyNormal, 750 * time.Millisecond, 4},
		{DifficultyHard, 500 * time.Millisecond, 4},
		{DifficultyFixed, 750 * time.Millisecond, 0},
	}
	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			ApplySnakePreset(&cfg, tt.preset)
			if cfg.Timing.StepInterval != tt.interval {
				t.Errorf("StepInterval = %v, expected %v", cfg.Timing.StepInterval, tt.interval)
			}
			if cfg.EffectiveRampEvery() != tt.rampEvery {
				t.Errorf("EffectiveRampEvery() = %d, expected %d", cfg.EffectiveRampEvery(), tt.rampEvery)
			}
		})
	}

	if _, ok := ParsePreset("nightmare"); ok {
		t.Error("ParsePreset accepted an unknown name")
	}
	if p, ok := ParsePreset("hard"); !ok || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, ok)
	}
}

func TestEffectiveRampEveryTestMode(t *testing.T) {
	cfg := DefaultSnakeConfig()
	cfg.TestMode.Enabled = true
	if cfg.EffectiveRampEvery() != 1 {
		t.Errorf("test mode ramp = %d, expected 1", cfg.EffectiveRampEvery())
	}
}
