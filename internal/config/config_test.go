package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultTetrisConfigIsValid(t *testing.T) {
	if err := DefaultTetrisConfig().Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
}

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("parse(embedded) failed: %v", err)
	}
	if cfg != DefaultTetrisConfig() {
		t.Errorf("embedded yaml = %+v, expected %+v", cfg, DefaultTetrisConfig())
	}
}

func TestLoadTetrisCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("timing:\n  tick_interval: 10ms\nscoring:\n  max_speed: 5\ndifficulty:\n  preset: hard\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadTetris(path)
	if err != nil {
		t.Fatalf("LoadTetris() failed: %v", err)
	}
	if cfg.Timing.TickInterval != 10*time.Millisecond {
		t.Errorf("TickInterval = %s, expected 10ms", cfg.Timing.TickInterval)
	}
	if cfg.Scoring.MaxSpeed != 5 {
		t.Errorf("MaxSpeed = %d, expected 5", cfg.Scoring.MaxSpeed)
	}
	if cfg.Difficulty.Preset != DifficultyHard {
		t.Errorf("Preset = %q, expected hard", cfg.Difficulty.Preset)
	}
	// Keys absent from the file keep their defaults
	if cfg.Timing.AutoshiftBase != 600*time.Millisecond {
		t.Errorf("AutoshiftBase = %s, expected default 600ms", cfg.Timing.AutoshiftBase)
	}
}

func TestLoadTetrisCustomPathErrors(t *testing.T) {
	if _, err := LoadTetris(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("scoring:\n  level_threshold: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadTetris(path)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("LoadTetris() error = %v, expected ErrInvalid", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*TetrisConfig)
	}{
		{"zero tick", func(c *TetrisConfig) { c.Timing.TickInterval = 0 }},
		{"zero floor", func(c *TetrisConfig) { c.Timing.AutoshiftFloor = 0 }},
		{"base below floor", func(c *TetrisConfig) { c.Timing.AutoshiftBase = 50 * time.Millisecond }},
		{"negative step", func(c *TetrisConfig) { c.Timing.AutoshiftStep = -1 }},
		{"negative clear delay", func(c *TetrisConfig) { c.Timing.ClearDelay = -1 }},
		{"zero reward", func(c *TetrisConfig) { c.Scoring.BaseReward = 0 }},
		{"zero threshold", func(c *TetrisConfig) { c.Scoring.LevelThreshold = 0 }},
		{"zero max speed", func(c *TetrisConfig) { c.Scoring.MaxSpeed = 0 }},
		{"unknown preset", func(c *TetrisConfig) { c.Difficulty.Preset = "insane" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultTetrisConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestProgressionSpeed(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		score    int
		expected int
	}{
		{DifficultyNormal, 0, 1},
		{DifficultyNormal, 599, 1},
		{DifficultyNormal, 600, 2},
		{DifficultyNormal, 5400, 10},
		{DifficultyNormal, 100000, 10}, // clamped
		{DifficultyEasy, 1199, 1},
		{DifficultyEasy, 1200, 2},
		{DifficultyHard, 0, 4},
		{DifficultyHard, 100000, 10},
		{DifficultyFixed, 100000, 1},
	}

	for _, tc := range tests {
		cfg := DefaultTetrisConfig()
		cfg.Difficulty.Preset = tc.preset
		p := NewProgression(cfg)
		if got := p.Speed(tc.score); got != tc.expected {
			t.Errorf("%s: Speed(%d) = %d, expected %d", tc.preset, tc.score, got, tc.expected)
		}
	}
}

func TestProgressionAutoshiftInterval(t *testing.T) {
	p := NewProgression(DefaultTetrisConfig())

	tests := []struct {
		speed    int
		expected time.Duration
	}{
		{0, 600 * time.Millisecond},
		{1, 550 * time.Millisecond},
		{5, 350 * time.Millisecond},
		{10, 100 * time.Millisecond},
		{20, 100 * time.Millisecond}, // floor
	}

	for _, tc := range tests {
		if got := p.AutoshiftInterval(tc.speed); got != tc.expected {
			t.Errorf("AutoshiftInterval(%d) = %s, expected %s", tc.speed, got, tc.expected)
		}
	}
}

func TestProgressionReward(t *testing.T) {
	p := NewProgression(DefaultTetrisConfig())

	for combo := 0; combo <= 4; combo++ {
		expected := 100 * combo * (combo + 1) / 2
		if got := p.Reward(combo); got != expected {
			t.Errorf("Reward(%d) = %d, expected %d", combo, got, expected)
		}
	}
}
