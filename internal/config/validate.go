package config

import (
	"fmt"
	"strconv"
)

// Smoothing bounds accepted by Validate.
const (
	MinSmoothing = 0.1
	MaxSmoothing = 0.18
)

// Validate rejects configurations the simulation cannot run with.
func (c FactorRunConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("config: world size must be positive, got %vx%v", c.World.Width, c.World.Height)
	case c.World.PlayerOffset <= 0 || c.World.PlayerOffset >= c.World.Height:
		return fmt.Errorf("config: player_offset %v outside (0, %v)", c.World.PlayerOffset, c.World.Height)
	case c.Player.Radius <= 0:
		return fmt.Errorf("config: player radius must be positive, got %v", c.Player.Radius)
	case c.Player.Spacing <= 0:
		return fmt.Errorf("config: player spacing must be positive, got %v", c.Player.Spacing)
	case c.Player.Smoothing < MinSmoothing || c.Player.Smoothing > MaxSmoothing:
		return fmt.Errorf("config: smoothing %v outside [%v, %v]", c.Player.Smoothing, MinSmoothing, MaxSmoothing)
	case c.Player.KeyStep < 0:
		return fmt.Errorf("config: key_step must not be negative, got %v", c.Player.KeyStep)
	case c.Player.MaxBalls < 1:
		return fmt.Errorf("config: max_balls must be at least 1, got %d", c.Player.MaxBalls)
	case c.Gates.Speed <= 0:
		return fmt.Errorf("config: gate speed must be positive, got %v", c.Gates.Speed)
	case c.Gates.Interval <= 0:
		return fmt.Errorf("config: gate interval must be positive, got %v", c.Gates.Interval)
	case c.Gates.PerCrate < 1:
		return fmt.Errorf("config: per_crate must be at least 1, got %d", c.Gates.PerCrate)
	case len(c.Gates.Operations) == 0:
		return fmt.Errorf("config: at least one gate operation is required")
	case c.Battle.EnemySpeed <= 0:
		return fmt.Errorf("config: enemy_speed must be positive, got %v", c.Battle.EnemySpeed)
	case c.Battle.ClashDelay <= 0:
		return fmt.Errorf("config: clash_delay must be positive, got %v", c.Battle.ClashDelay)
	case c.Battle.EndDelay < 0:
		return fmt.Errorf("config: end_delay must not be negative, got %v", c.Battle.EndDelay)
	case c.Battle.BaseArmy < 1:
		return fmt.Errorf("config: base_army must be at least 1, got %d", c.Battle.BaseArmy)
	case c.Battle.ArmyPerLevel < 0:
		return fmt.Errorf("config: army_per_level must not be negative, got %d", c.Battle.ArmyPerLevel)
	case c.Battle.ArmySpread < 1:
		return fmt.Errorf("config: army_spread must be at least 1, got %d", c.Battle.ArmySpread)
	case c.Difficulty.StartLevel < 1:
		return fmt.Errorf("config: start_level must be at least 1, got %d", c.Difficulty.StartLevel)
	}

	for _, op := range c.Gates.Operations {
		if err := checkOperation(op); err != nil {
			return err
		}
	}
	return nil
}

// checkOperation accepts "*k" and "/k" with an integer k >= 2.
func checkOperation(op string) error {
	if len(op) < 2 || (op[0] != '*' && op[0] != '/') {
		return fmt.Errorf("config: invalid gate operation %q", op)
	}
	k, err := strconv.Atoi(op[1:])
	if err != nil || k < 2 {
		return fmt.Errorf("config: invalid gate operation %q: factor must be an integer >= 2", op)
	}
	return nil
}
