// Package factorrun implements Factor Run: a column of balls slides under
// falling gates that multiply or divide it, and every fifth gate drops a
// crate that starts a battle against an enemy army.
package factorrun

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/factor-run/internal/config"
	"github.com/vovakirdan/factor-run/internal/core"
	"github.com/vovakirdan/factor-run/internal/registry"
)

// GameID is the registry and storage identifier of the game.
const GameID = "factorrun"

// Phase is the top-level state of the game.
type Phase int

const (
	PhaseRun Phase = iota
	PhaseBattle
	PhaseEnd
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseRun:
		return "RUN"
	case PhaseBattle:
		return "BATTLE"
	case PhaseEnd:
		return "END"
	default:
		return "UNKNOWN"
	}
}

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game implements the Factor Run state machine.
type Game struct {
	runtime    core.RuntimeConfig
	cfg        config.FactorRunConfig
	fixedCfg   *config.FactorRunConfig
	difficulty *config.DifficultyManager
	ops        []Op
	rng        *rand.Rand
	frame      time.Duration

	phase     Phase
	paused    bool
	tickCount int
	level     int
	score     int

	playerX   float64
	targetX   float64
	ballCount int

	gates         []Gate
	crates        []Crate
	gatesPassed   int
	cratesSpawned int
	spawnTimer    time.Duration

	battle *Battle
	end    *EndScreen

	// Per-step outputs
	events []core.Event
	report *core.BattleReport
}

// New creates a game that loads its config from the search path on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game with an explicit config, skipping the loader.
func NewWithConfig(cfg config.FactorRunConfig) *Game {
	return &Game{fixedCfg: &cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Factor Run"
}

// Reset initializes the game from scratch: level, score and round.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.frame = runtime.FramePeriod()
	g.cfg = g.loadConfig()
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	g.ops = g.ops[:0]
	for _, s := range g.cfg.Gates.Operations {
		if op, err := ParseOp(s); err == nil {
			g.ops = append(g.ops, op)
		}
	}

	g.paused = false
	g.tickCount = 0
	g.level = g.cfg.Difficulty.StartLevel
	g.score = 0
	g.resetRound()
}

// loadConfig resolves the effective configuration.
// An unreadable or invalid config falls back to the defaults.
func (g *Game) loadConfig() config.FactorRunConfig {
	var cfg config.FactorRunConfig
	if g.fixedCfg != nil {
		cfg = *g.fixedCfg
	} else {
		loaded, err := config.Load(configPath)
		if err != nil {
			loaded = config.DefaultFactorRunConfig()
		}
		config.ApplyPreset(&loaded, difficultyPreset)
		cfg = loaded
	}

	clampSizes(&cfg)
	if err := cfg.Validate(); err != nil {
		return config.DefaultFactorRunConfig()
	}
	return cfg
}

// clampSizes replaces non-positive gate and crate sizes with the defaults.
func clampSizes(cfg *config.FactorRunConfig) {
	def := config.DefaultFactorRunConfig()
	if cfg.Gates.Width <= 0 {
		cfg.Gates.Width = def.Gates.Width
	}
	if cfg.Gates.Height <= 0 {
		cfg.Gates.Height = def.Gates.Height
	}
	if cfg.Crates.Width <= 0 {
		cfg.Crates.Width = def.Crates.Width
	}
	if cfg.Crates.Height <= 0 {
		cfg.Crates.Height = def.Crates.Height
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil
	g.report = nil

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result()
	}

	g.tickCount++
	g.updateTarget(in)

	switch g.phase {
	case PhaseRun:
		g.stepRun()
		if g.phase == PhaseRun {
			g.stepSpawner()
		}
	case PhaseBattle:
		g.stepBattle()
	case PhaseEnd:
		g.stepEnd()
	}

	return g.result()
}

func (g *Game) result() core.StepResult {
	return core.StepResult{
		State:  g.State(),
		Events: g.events,
		Battle: g.report,
	}
}

// updateTarget moves the pointer target from pointer or key input.
func (g *Game) updateTarget(in core.InputFrame) {
	w := g.cfg.World.Width
	if in.HasPointer {
		g.targetX = in.Pointer * w
	}
	if in.Has(core.ActionLeft) {
		g.targetX -= g.cfg.Player.KeyStep
	}
	if in.Has(core.ActionRight) {
		g.targetX += g.cfg.Player.KeyStep
	}
	g.targetX = core.ClampF(g.targetX, 0, w)
}

func (g *Game) emit(e core.Event) {
	g.events = append(g.events, e)
}

// playerY returns the y coordinate of the ball column.
func (g *Game) playerY() float64 {
	return g.cfg.World.Height - g.cfg.World.PlayerOffset
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    g.level,
		GameOver: g.phase == PhaseEnd && g.end != nil && g.end.Outcome == OutcomeLose,
		Paused:   g.paused,
	}
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Config returns the effective configuration.
func (g *Game) Config() config.FactorRunConfig {
	return g.cfg
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
