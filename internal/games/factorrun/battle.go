package factorrun

import (
	"time"

	"github.com/vovakirdan/factor-run/internal/core"
)

// Battle holds the state of the BATTLE phase.
type Battle struct {
	Enemies []Enemy // Front unit at index 0

	// Counts captured when the battle started; never mutated afterwards.
	InitialPlayerCount int
	InitialEnemyCount  int

	Clashes  int
	pending  bool
	cooldown time.Duration
}

// Pending reports whether a clash is waiting for its cooldown.
func (b *Battle) Pending() bool {
	return b.pending
}

// removeFront drops the front enemy. Empty armies are left untouched.
func (b *Battle) removeFront() {
	if len(b.Enemies) == 0 {
		return
	}
	b.Enemies = b.Enemies[1:]
}

// startBattle leaves RUN: clears crates, snapshots counts, spawns the army.
func (g *Game) startBattle() {
	g.crates = nil

	count := g.armySize()
	g.battle = &Battle{
		Enemies:            g.spawnArmy(count),
		InitialPlayerCount: g.ballCount,
		InitialEnemyCount:  count,
	}
	g.phase = PhaseBattle
	g.emit(core.EventBattleStart)
}

// armySize returns randInt(0..spread-1) + base + level*perLevel.
func (g *Game) armySize() int {
	bc := g.cfg.Battle
	return g.rng.Intn(bc.ArmySpread) + bc.BaseArmy + g.level*bc.ArmyPerLevel
}

// spawnArmy lays the army out side by side, centered, above the screen.
func (g *Game) spawnArmy(count int) []Enemy {
	sp := g.cfg.Player.Spacing
	left := g.cfg.World.Width/2 - float64(count)*sp/2

	enemies := make([]Enemy, count)
	for i := range enemies {
		enemies[i] = Enemy{
			X: left + float64(i)*sp,
			Y: g.cfg.Battle.SpawnY,
		}
	}
	return enemies
}

// stepBattle advances one frame of the BATTLE phase.
func (g *Game) stepBattle() {
	b := g.battle
	r := g.cfg.Player.Radius
	frontLine := g.playerY() - r

	for i := range b.Enemies {
		b.Enemies[i].Y = min(b.Enemies[i].Y+g.cfg.Battle.EnemySpeed, frontLine)
	}

	if b.pending {
		b.cooldown -= g.frame
		if b.cooldown > 0 {
			return
		}
		b.pending = false
		g.resolveClash()
	}

	if len(b.Enemies) == 0 || g.ballCount == 0 {
		g.endBattle()
		return
	}

	if b.Enemies[0].Y+r >= g.playerY() {
		b.pending = true
		b.cooldown = g.cfg.Battle.ClashDelay
	}
}

// resolveClash trades units one for one using the counts at this moment.
func (g *Game) resolveClash() {
	b := g.battle
	enemies := len(b.Enemies)

	switch {
	case g.ballCount > enemies:
		b.removeFront()
	case enemies > g.ballCount:
		g.ballCount--
	default:
		b.removeFront()
		g.ballCount = max(0, g.ballCount-1)
	}

	b.Clashes++
	g.emit(core.EventClash)
}
