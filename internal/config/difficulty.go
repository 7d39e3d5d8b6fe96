package config

import (
	"fmt"
	"time"
)

// DifficultyPreset names a progression style.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"   // Twice as many points per speed tier
	DifficultyNormal DifficultyPreset = "normal" // Progression as configured
	DifficultyHard   DifficultyPreset = "hard"   // Starts three tiers faster
	DifficultyFixed  DifficultyPreset = "fixed"  // Speed never changes
)

// hardSpeedOffset is how many tiers the hard preset skips at the start.
const hardSpeedOffset = 3

// ParseDifficultyPreset converts a string to a preset. Empty means normal.
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty preset %q", ErrInvalid, s)
	}
}

// Progression derives speed, autoshift cadence and rewards from a config.
// It is a pure value and safe to copy.
type Progression struct {
	timing  TimingConfig
	scoring ScoringConfig
	preset  DifficultyPreset
}

// NewProgression creates a progression calculator for the given config.
func NewProgression(cfg TetrisConfig) Progression {
	preset, err := ParseDifficultyPreset(string(cfg.Difficulty.Preset))
	if err != nil {
		preset = DifficultyNormal
	}
	return Progression{
		timing:  cfg.Timing,
		scoring: cfg.Scoring,
		preset:  preset,
	}
}

// Speed returns the speed tier for a cumulative score, clamped to MaxSpeed.
// Recomputed from scratch each time, never incremented.
func (p Progression) Speed(score int) int {
	maxSpeed := p.scoring.MaxSpeed
	threshold := p.scoring.LevelThreshold
	if threshold <= 0 {
		threshold = 1 // Prevent division by zero
	}

	var speed int
	switch p.preset {
	case DifficultyFixed:
		speed = 1
	case DifficultyEasy:
		speed = score/(threshold*2) + 1
	case DifficultyHard:
		speed = score/threshold + 1 + hardSpeedOffset
	default:
		speed = score/threshold + 1
	}
	return min(speed, maxSpeed)
}

// AutoshiftInterval returns how long the scheduler sleeps between forced
// drops at the given speed. Decreases linearly per tier down to the floor.
func (p Progression) AutoshiftInterval(speed int) time.Duration {
	interval := p.timing.AutoshiftBase - time.Duration(speed)*p.timing.AutoshiftStep
	if interval < p.timing.AutoshiftFloor {
		return p.timing.AutoshiftFloor
	}
	return interval
}

// Reward returns the points for one contiguous run of combo cleared rows:
// BaseReward * (1 + 2 + ... + combo).
func (p Progression) Reward(combo int) int {
	reward := 0
	for i := 1; i <= combo; i++ {
		reward += p.scoring.BaseReward * i
	}
	return reward
}

// TickInterval returns the tick loop period.
func (p Progression) TickInterval() time.Duration {
	return p.timing.TickInterval
}

// ClearDelay returns how long marked rows stay on the board before removal.
func (p Progression) ClearDelay() time.Duration {
	return p.timing.ClearDelay
}
