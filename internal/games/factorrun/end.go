package factorrun

import (
	"fmt"
	"time"

	"github.com/vovakirdan/factor-run/internal/core"
)

// Outcome is the verdict of a battle.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeLose
	OutcomeDraw
)

// String returns the lowercase outcome name used in storage.
func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLose:
		return "lose"
	case OutcomeDraw:
		return "draw"
	default:
		return "none"
	}
}

// Verdict returns the headline shown on the end screen.
func (o Outcome) Verdict() string {
	switch o {
	case OutcomeWin:
		return "YOU WIN"
	case OutcomeLose:
		return "YOU LOSE"
	case OutcomeDraw:
		return "NO WINNER"
	default:
		return ""
	}
}

// EndScreen holds the state of the END phase.
type EndScreen struct {
	Outcome Outcome
	Text    string
	timer   time.Duration
}

// decide compares the counts captured at battle start.
func decide(player, enemy int) (Outcome, string) {
	switch {
	case player > enemy:
		return OutcomeWin, fmt.Sprintf("%d > %d\n%s", player, enemy, OutcomeWin.Verdict())
	case player < enemy:
		return OutcomeLose, fmt.Sprintf("%d < %d\n%s", player, enemy, OutcomeLose.Verdict())
	default:
		return OutcomeDraw, fmt.Sprintf("%d = %d\n%s", player, enemy, OutcomeDraw.Verdict())
	}
}

// endBattle computes the outcome, adjusts the level and enters END.
func (g *Game) endBattle() {
	b := g.battle
	outcome, text := decide(b.InitialPlayerCount, b.InitialEnemyCount)
	fought := g.level

	switch outcome {
	case OutcomeWin:
		g.level++
		g.emit(core.EventBattleWin)
	case OutcomeLose:
		g.level = g.cfg.Difficulty.StartLevel
		g.emit(core.EventBattleLose)
	default:
		g.emit(core.EventBattleDraw)
	}

	g.report = &core.BattleReport{
		Level:       fought,
		PlayerCount: b.InitialPlayerCount,
		EnemyCount:  b.InitialEnemyCount,
		Outcome:     outcome.String(),
		Clashes:     b.Clashes,
		BallsLeft:   g.ballCount,
		EnemiesLeft: len(b.Enemies),
		Score:       g.score,
	}

	g.end = &EndScreen{
		Outcome: outcome,
		Text:    text,
		timer:   g.cfg.Battle.EndDelay,
	}
	g.phase = PhaseEnd
}

// stepEnd counts down the end screen and resets the round.
func (g *Game) stepEnd() {
	g.end.timer -= g.frame
	if g.end.timer > 0 {
		return
	}
	if g.end.Outcome == OutcomeLose {
		g.score = 0
	}
	g.resetRound()
}

// resetRound clears the field for a new run. Level and score persist.
func (g *Game) resetRound() {
	g.gates = nil
	g.crates = nil
	g.battle = nil
	g.end = nil
	g.gatesPassed = 0
	g.cratesSpawned = 0
	g.ballCount = 1
	g.playerX = g.cfg.World.Width / 2
	g.targetX = g.playerX
	g.spawnTimer = g.cfg.Gates.Interval
	g.phase = PhaseRun
}
