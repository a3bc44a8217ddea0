// Package config provides YAML-based game configuration loading and
// difficulty management for Factor Run.
package config

import "time"

// FactorRunConfig contains every tuning constant of the game.
type FactorRunConfig struct {
	World      WorldConfig      `yaml:"world"`
	Player     PlayerConfig     `yaml:"player"`
	Gates      GateConfig       `yaml:"gates"`
	Crates     CrateConfig      `yaml:"crates"`
	Battle     BattleConfig     `yaml:"battle"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the logical play field in world units.
type WorldConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	PlayerOffset float64 `yaml:"player_offset"` // Distance of the player line above the bottom
}

// PlayerConfig defines the ball column.
type PlayerConfig struct {
	Radius    float64 `yaml:"radius"`
	Spacing   float64 `yaml:"spacing"`   // Horizontal distance between balls
	Smoothing float64 `yaml:"smoothing"` // Fraction of the distance to target covered per frame
	KeyStep   float64 `yaml:"key_step"`  // Target nudge per Left/Right action
	MaxBalls  int     `yaml:"max_balls"`
}

// GateConfig defines falling gates.
type GateConfig struct {
	Speed      float64       `yaml:"speed"` // Units per frame
	Interval   time.Duration `yaml:"interval"`
	Width      float64       `yaml:"width"`
	Height     float64       `yaml:"height"`
	SpawnY     float64       `yaml:"spawn_y"`
	Operations []string      `yaml:"operations"` // e.g. "*2", "/2"
	Points     int           `yaml:"points"`     // Score per applied gate
	PerCrate   int           `yaml:"per_crate"`  // Gates passed per crate
}

// CrateConfig defines the battle trigger crates.
type CrateConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	SpawnY float64 `yaml:"spawn_y"`
}

// BattleConfig defines the enemy army and clash timing.
type BattleConfig struct {
	EnemySpeed   float64       `yaml:"enemy_speed"` // Units per frame
	ClashDelay   time.Duration `yaml:"clash_delay"`
	EndDelay     time.Duration `yaml:"end_delay"`
	BaseArmy     int           `yaml:"base_army"`
	ArmyPerLevel int           `yaml:"army_per_level"`
	ArmySpread   int           `yaml:"army_spread"` // Random extra in [0, spread)
	SpawnY       float64       `yaml:"spawn_y"`
}

// DifficultyConfig defines per-level speed scaling.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	StartLevel   int               `yaml:"start_level"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases with the level.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "level" or "none"
	MaxAt int    `yaml:"max_at"` // Level at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset.
// Unknown values yield the empty preset, which leaves the config untouched.
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *FactorRunConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}

	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Gates.Speed = 2.0
	case DifficultyHard:
		cfg.Gates.Speed = 3.0
		cfg.Battle.EnemySpeed = 4
		cfg.Battle.BaseArmy = 6
		cfg.Difficulty.Scaling.SpeedMultiplier = 0.5
	}
}
