// Package config provides YAML-based configuration loading for the Tetris
// engine: loop timing, scoring and difficulty progression.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// TetrisConfig contains all configuration for the Tetris engine.
type TetrisConfig struct {
	Timing     TimingConfig     `yaml:"timing"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Seed       int64            `yaml:"seed"` // 0 means time-based
}

// TimingConfig defines the cadence of the two worker loops.
type TimingConfig struct {
	TickInterval   time.Duration `yaml:"tick_interval"`   // Tick loop period
	AutoshiftBase  time.Duration `yaml:"autoshift_base"`  // Autoshift interval at speed 0
	AutoshiftStep  time.Duration `yaml:"autoshift_step"`  // Reduction per speed tier
	AutoshiftFloor time.Duration `yaml:"autoshift_floor"` // Shortest autoshift interval
	ClearDelay     time.Duration `yaml:"clear_delay"`     // How long marked rows stay visible
}

// ScoringConfig defines rewards and level progression.
type ScoringConfig struct {
	BaseReward     int `yaml:"base_reward"`     // Reward unit for cleared rows
	LevelThreshold int `yaml:"level_threshold"` // Points per speed tier
	MaxSpeed       int `yaml:"max_speed"`       // Highest speed tier
}

// DifficultyConfig selects a difficulty preset by name.
type DifficultyConfig struct {
	Preset DifficultyPreset `yaml:"preset"`
}

// Validate checks that the configuration can drive the engine.
func (c TetrisConfig) Validate() error {
	t := c.Timing
	switch {
	case t.TickInterval <= 0:
		return fmt.Errorf("%w: tick_interval must be positive, got %s", ErrInvalid, t.TickInterval)
	case t.AutoshiftFloor <= 0:
		return fmt.Errorf("%w: autoshift_floor must be positive, got %s", ErrInvalid, t.AutoshiftFloor)
	case t.AutoshiftBase < t.AutoshiftFloor:
		return fmt.Errorf("%w: autoshift_base %s is below autoshift_floor %s", ErrInvalid, t.AutoshiftBase, t.AutoshiftFloor)
	case t.AutoshiftStep < 0:
		return fmt.Errorf("%w: autoshift_step must not be negative", ErrInvalid)
	case t.ClearDelay < 0:
		return fmt.Errorf("%w: clear_delay must not be negative", ErrInvalid)
	}

	s := c.Scoring
	switch {
	case s.BaseReward <= 0:
		return fmt.Errorf("%w: base_reward must be positive, got %d", ErrInvalid, s.BaseReward)
	case s.LevelThreshold <= 0:
		return fmt.Errorf("%w: level_threshold must be positive, got %d", ErrInvalid, s.LevelThreshold)
	case s.MaxSpeed < 1:
		return fmt.Errorf("%w: max_speed must be at least 1, got %d", ErrInvalid, s.MaxSpeed)
	}

	if _, err := ParseDifficultyPreset(string(c.Difficulty.Preset)); err != nil {
		return err
	}
	return nil
}
