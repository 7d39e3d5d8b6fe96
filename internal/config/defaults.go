package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the hardcoded default configuration.
// It matches defaults/tetris.yaml.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Timing: TimingConfig{
			TickInterval:   5 * time.Millisecond,
			AutoshiftBase:  600 * time.Millisecond,
			AutoshiftStep:  50 * time.Millisecond,
			AutoshiftFloor: 100 * time.Millisecond,
			ClearDelay:     160 * time.Millisecond,
		},
		Scoring: ScoringConfig{
			BaseReward:     100,
			LevelThreshold: 600,
			MaxSpeed:       10,
		},
		Difficulty: DifficultyConfig{
			Preset: DifficultyNormal,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
