package factorrun

import (
	"testing"

	"github.com/vovakirdan/factor-run/internal/core"
)

func TestBattleScenarios(t *testing.T) {
	tests := []struct {
		name        string
		player      int
		enemies     int
		clashes     int
		ballsLeft   int
		enemiesLeft int
		outcome     Outcome
		text        string
		level       int
	}{
		{"eight beat five", 8, 5, 5, 8, 0, OutcomeWin, "8 > 5\nYOU WIN", 2},
		{"four tie four", 4, 4, 4, 0, 0, OutcomeDraw, "4 = 4\nNO WINNER", 1},
		{"three lose to seven", 3, 7, 3, 0, 7, OutcomeLose, "3 < 7\nYOU LOSE", 1},
		{"five lose to six", 5, 6, 5, 0, 6, OutcomeLose, "5 < 6\nYOU LOSE", 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(1)
			enterBattle(g, tc.player, tc.enemies)

			res := runBattle(t, g)

			if g.phase != PhaseEnd {
				t.Fatalf("phase = %v, expected END", g.phase)
			}
			if g.battle.Clashes != tc.clashes {
				t.Errorf("clashes = %d, expected %d", g.battle.Clashes, tc.clashes)
			}
			if g.ballCount != tc.ballsLeft {
				t.Errorf("balls left = %d, expected %d", g.ballCount, tc.ballsLeft)
			}
			if len(g.battle.Enemies) != tc.enemiesLeft {
				t.Errorf("enemies left = %d, expected %d", len(g.battle.Enemies), tc.enemiesLeft)
			}
			if g.end.Outcome != tc.outcome {
				t.Errorf("outcome = %v, expected %v", g.end.Outcome, tc.outcome)
			}
			if g.end.Text != tc.text {
				t.Errorf("end text = %q, expected %q", g.end.Text, tc.text)
			}
			if g.level != tc.level {
				t.Errorf("level = %d, expected %d", g.level, tc.level)
			}

			if res.Battle == nil {
				t.Fatal("battle report missing on the final battle frame")
			}
			if res.Battle.Clashes != tc.clashes || res.Battle.Outcome != tc.outcome.String() || res.Battle.Level != 1 {
				t.Errorf("unexpected report %+v", *res.Battle)
			}
		})
	}
}

func TestBattleCues(t *testing.T) {
	cases := []struct {
		player, enemies int
		cue             core.Event
	}{
		{6, 2, core.EventBattleWin},
		{2, 6, core.EventBattleLose},
		{3, 3, core.EventBattleDraw},
	}

	for _, tc := range cases {
		g := newTestGame(1)
		enterBattle(g, tc.player, tc.enemies)
		res := runBattle(t, g)
		if !hasEvent(res.Events, tc.cue) {
			t.Errorf("%d vs %d: expected cue %s, got %v", tc.player, tc.enemies, tc.cue, res.Events)
		}
	}
}

func TestClashCountAndExclusivity(t *testing.T) {
	for p := 1; p <= 8; p++ {
		for e := 1; e <= 8; e++ {
			g := newTestGame(1)
			enterBattle(g, p, e)

			for g.phase == PhaseBattle {
				balls, enemies := g.ballCount, len(g.battle.Enemies)
				res := g.Step(core.NewInputFrame())
				if !hasEvent(res.Events, core.EventClash) {
					continue
				}

				lostBall := g.ballCount < balls
				lostEnemy := len(g.battle.Enemies) < enemies
				if lostBall && lostEnemy && balls != enemies {
					t.Fatalf("%d vs %d: clash at %d/%d removed from both sides", p, e, balls, enemies)
				}
				if !lostBall && !lostEnemy {
					t.Fatalf("%d vs %d: clash removed nothing", p, e)
				}
			}

			want := min(p, e)
			if g.battle.Clashes != want {
				t.Errorf("%d vs %d: clashes = %d, expected %d", p, e, g.battle.Clashes, want)
			}
		}
	}
}

func TestInitialCountsNotMutated(t *testing.T) {
	g := newTestGame(1)
	enterBattle(g, 8, 5)
	runBattle(t, g)

	if g.battle.InitialPlayerCount != 8 || g.battle.InitialEnemyCount != 5 {
		t.Errorf("initial counts changed to %d/%d", g.battle.InitialPlayerCount, g.battle.InitialEnemyCount)
	}
}

func TestEnemiesStopAtFrontLine(t *testing.T) {
	g := newTestGame(1)
	enterBattle(g, 3, 3)

	for range 400 {
		g.Step(core.NewInputFrame())
		if g.phase != PhaseBattle {
			break
		}
		for _, e := range g.battle.Enemies {
			if e.Y+g.cfg.Player.Radius > g.playerY() {
				t.Fatalf("enemy at %v crossed the front line", e.Y)
			}
		}
	}
}

func TestClashWaitsForCooldown(t *testing.T) {
	g := newTestGame(1)
	enterBattle(g, 5, 2)
	for i := range g.battle.Enemies {
		g.battle.Enemies[i].Y = g.playerY() - g.cfg.Player.Radius
	}

	idle(g, 1)
	if !g.battle.Pending() {
		t.Fatal("clash should be pending once the front enemy reaches the player")
	}

	// 140ms at 60 ticks/s resolves on the ninth frame
	events := idle(g, 8)
	if hasEvent(events, core.EventClash) {
		t.Fatal("clash resolved before the cooldown expired")
	}
	events = idle(g, 1)
	if !hasEvent(events, core.EventClash) {
		t.Fatal("clash should resolve once the cooldown expires")
	}
}

func TestArmyLayoutCentered(t *testing.T) {
	g := newTestGame(1)
	army := g.spawnArmy(4)

	sp := g.cfg.Player.Spacing
	left := g.cfg.World.Width/2 - 2*sp
	for i, e := range army {
		if e.X != left+float64(i)*sp || e.Y != g.cfg.Battle.SpawnY {
			t.Errorf("enemy %d at (%v, %v)", i, e.X, e.Y)
		}
	}
}

func TestRemoveFrontOnEmptyArmy(t *testing.T) {
	b := &Battle{}
	b.removeFront()
	if len(b.Enemies) != 0 {
		t.Error("empty army should stay empty")
	}
}

func TestArmyGrowsWithLevel(t *testing.T) {
	g := newTestGame(5)
	g.level = 4

	for range 50 {
		n := g.armySize()
		// randInt(0..4) + 5 + 4*2
		if n < 13 || n > 17 {
			t.Fatalf("armySize() = %d at level 4, expected 13..17", n)
		}
	}
}
