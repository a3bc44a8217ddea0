package config

import "math"

// DifficultyManager calculates per-level game parameters.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Difficulty returns the difficulty (0.0 to 1.0) for a game level.
// Level 1 maps to the initial difficulty; max_at reaches 1.0.
func (d *DifficultyManager) Difficulty(level int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt - 1)
	if maxAt <= 0 {
		maxAt = 1
	}
	progress := clampF(float64(level-1)/maxAt, 0.0, 1.0)

	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed scales a base speed for the given level.
// With a zero speed_multiplier the base speed is returned unchanged.
func (d *DifficultyManager) Speed(baseSpeed float64, level int) float64 {
	if !d.IsEnabled() {
		return baseSpeed
	}
	return baseSpeed * (1.0 + d.Difficulty(level)*d.cfg.Scaling.SpeedMultiplier)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
