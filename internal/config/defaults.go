package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/factorrun.yaml
var defaultFactorRunYAML []byte

// DefaultFactorRunConfig returns the hard-coded default configuration.
// It mirrors defaults/factorrun.yaml and is used when the embedded file
// cannot be parsed.
func DefaultFactorRunConfig() FactorRunConfig {
	return FactorRunConfig{
		World: WorldConfig{
			Width:        480,
			Height:       800,
			PlayerOffset: 120,
		},
		Player: PlayerConfig{
			Radius:    10,
			Spacing:   22,
			Smoothing: 0.15,
			KeyStep:   24,
			MaxBalls:  100000,
		},
		Gates: GateConfig{
			Speed:      2.5,
			Interval:   time.Second,
			Width:      90,
			Height:     60,
			SpawnY:     -80,
			Operations: []string{"*2", "/2", "*3"},
			Points:     10,
			PerCrate:   5,
		},
		Crates: CrateConfig{
			Width:  90,
			Height: 60,
			SpawnY: -100,
		},
		Battle: BattleConfig{
			EnemySpeed:   3,
			ClashDelay:   140 * time.Millisecond,
			EndDelay:     2800 * time.Millisecond,
			BaseArmy:     5,
			ArmyPerLevel: 2,
			ArmySpread:   5,
			SpawnY:       -40,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			StartLevel:   1,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.0,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFactorRunYAML
}
