package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// FramePeriod returns the fixed simulated duration of one tick.
func (c RuntimeConfig) FramePeriod() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Level    int  // Current level
	GameOver bool // Whether the run has ended with a loss
	Paused   bool // Whether the game is paused
}

// BattleReport summarizes a finished battle.
type BattleReport struct {
	Level       int
	PlayerCount int // Ball count when the battle started
	EnemyCount  int // Army size when the battle started
	Outcome     string
	Clashes     int
	BallsLeft   int
	EnemiesLeft int
	Score       int
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event

	// Battle is set only on the tick a battle ends.
	Battle *BattleReport
}
