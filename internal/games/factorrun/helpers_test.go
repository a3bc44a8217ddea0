package factorrun

import (
	"slices"
	"testing"

	"github.com/vovakirdan/factor-run/internal/config"
	"github.com/vovakirdan/factor-run/internal/core"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func newTestGame(seed int64) *Game {
	g := NewWithConfig(config.DefaultFactorRunConfig())
	g.Reset(testRuntime(seed))
	return g
}

// idle steps the game n times without input and collects all events.
func idle(g *Game, n int) []core.Event {
	var events []core.Event
	for range n {
		res := g.Step(core.NewInputFrame())
		events = append(events, res.Events...)
	}
	return events
}

func countEvents(events []core.Event, e core.Event) int {
	n := 0
	for _, ev := range events {
		if ev == e {
			n++
		}
	}
	return n
}

// enterBattle puts the game into BATTLE with the given army sizes.
func enterBattle(g *Game, player, enemies int) {
	g.gates = nil
	g.crates = nil
	g.ballCount = player
	g.battle = &Battle{
		Enemies:            g.spawnArmy(enemies),
		InitialPlayerCount: player,
		InitialEnemyCount:  enemies,
	}
	g.phase = PhaseBattle
}

// runBattle steps until the battle ends and returns the step result of
// the final battle frame.
func runBattle(t *testing.T, g *Game) core.StepResult {
	t.Helper()
	for range 100000 {
		res := g.Step(core.NewInputFrame())
		if g.phase != PhaseBattle {
			return res
		}
	}
	t.Fatal("battle did not terminate")
	return core.StepResult{}
}

func hasEvent(events []core.Event, e core.Event) bool {
	return slices.Contains(events, e)
}
