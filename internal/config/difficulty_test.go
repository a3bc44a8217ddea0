package config

import "testing"

func TestDifficultySpeedDefaultUnscaled(t *testing.T) {
	d := NewDifficultyManager(DefaultFactorRunConfig().Difficulty)

	for _, level := range []int{1, 5, 50} {
		if got := d.Speed(2.5, level); got != 2.5 {
			t.Errorf("Speed(2.5, %d) = %v, expected 2.5 with zero multiplier", level, got)
		}
	}
}

func TestDifficultyProgression(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "level", MaxAt: 11},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0},
	}
	d := NewDifficultyManager(cfg)

	tests := []struct {
		level    int
		expected float64
	}{
		{1, 2.0},
		{6, 3.0},
		{11, 4.0},
		{30, 4.0},
	}

	for _, tc := range tests {
		if got := d.Speed(2.0, tc.level); got != tc.expected {
			t.Errorf("Speed(2.0, %d) = %v, expected %v", tc.level, got, tc.expected)
		}
	}
}

func TestDifficultyDisabled(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:     false,
		Progression: ProgressionConfig{Type: "level", MaxAt: 5},
		Scaling:     ScalingConfig{SpeedMultiplier: 2.0},
	}
	d := NewDifficultyManager(cfg)

	if d.IsEnabled() {
		t.Error("manager should report disabled")
	}
	if got := d.Speed(3.0, 10); got != 3.0 {
		t.Errorf("disabled manager should not scale, got %v", got)
	}
}
