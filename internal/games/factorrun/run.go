package factorrun

import (
	"math"

	"github.com/vovakirdan/factor-run/internal/core"
)

// stepRun advances one frame of the RUN phase.
func (g *Game) stepRun() {
	g.playerX += (g.targetX - g.playerX) * g.cfg.Player.Smoothing

	speed := g.difficulty.Speed(g.cfg.Gates.Speed, g.level)
	py := g.playerY()

	for i := range g.gates {
		gate := &g.gates[i]
		fall(&gate.Bounds, speed)

		if !gate.Used && g.ballHits(gate.Bounds) {
			g.applyGate(gate)
		}

		if !gate.Counted && gate.Bounds.Y > py {
			gate.Counted = true
			g.gatesPassed++
			g.maybeSpawnCrate()
		}
	}

	for i := range g.crates {
		crate := &g.crates[i]
		fall(&crate.Bounds, speed)

		if g.ballHits(crate.Bounds) {
			g.startBattle()
			return
		}
	}

	g.prune()
}

// ballHits reports whether any ball of the column overlaps rect.
// Only balls whose x range can reach the rectangle are probed.
func (g *Game) ballHits(rect core.RectF) bool {
	r := g.cfg.Player.Radius
	sp := g.cfg.Player.Spacing
	py := g.playerY()

	if rect.Y-r > py || rect.Bottom()+r < py {
		return false
	}

	first := int(math.Ceil((rect.X - r - g.playerX) / sp))
	last := int(math.Floor((rect.Right() + r - g.playerX) / sp))
	first = max(first, 0)
	last = min(last, g.ballCount-1)

	for i := first; i <= last; i++ {
		bx := g.playerX + float64(i)*sp
		if core.CircleIntersectsRect(bx, py, r, rect) {
			return true
		}
	}
	return false
}

// applyGate applies a gate's operation exactly once.
func (g *Game) applyGate(gate *Gate) {
	if gate.Used {
		return
	}
	gate.Used = true
	g.ballCount = gate.Op.Apply(g.ballCount, g.cfg.Player.MaxBalls)
	g.score += g.cfg.Gates.Points

	if gate.Op.Kind == OpMultiply {
		g.emit(core.EventGateMultiply)
	} else {
		g.emit(core.EventGateDivide)
	}
}

// maybeSpawnCrate keeps cratesSpawned equal to floor(gatesPassed / per_crate).
func (g *Game) maybeSpawnCrate() {
	if g.gatesPassed/g.cfg.Gates.PerCrate > g.cratesSpawned {
		g.cratesSpawned++
		g.spawnCrate()
	}
}

// stepSpawner counts down to the next gate.
func (g *Game) stepSpawner() {
	g.spawnTimer -= g.frame
	for g.spawnTimer <= 0 {
		g.spawnGate()
		g.spawnTimer += g.cfg.Gates.Interval
	}
}

func (g *Game) spawnGate() {
	gc := g.cfg.Gates
	op := Op{Kind: OpMultiply, Factor: 2}
	if len(g.ops) > 0 {
		op = g.ops[g.rng.Intn(len(g.ops))]
	}

	g.gates = append(g.gates, Gate{
		Bounds: core.RectF{
			X: g.rng.Float64() * math.Max(0, g.cfg.World.Width-gc.Width-10),
			Y: gc.SpawnY,
			W: gc.Width,
			H: gc.Height,
		},
		Op: op,
	})
}

func (g *Game) spawnCrate() {
	cc := g.cfg.Crates
	g.crates = append(g.crates, Crate{
		Bounds: core.RectF{
			X: g.rng.Float64() * math.Max(0, g.cfg.World.Width-cc.Width),
			Y: cc.SpawnY,
			W: cc.Width,
			H: cc.Height,
		},
	})
}

// prune drops gates and crates that fell past the bottom of the world.
func (g *Game) prune() {
	limit := g.cfg.World.Height + 100

	gates := g.gates[:0]
	for _, gate := range g.gates {
		if gate.Bounds.Y <= limit {
			gates = append(gates, gate)
		}
	}
	g.gates = gates

	crates := g.crates[:0]
	for _, c := range g.crates {
		if c.Bounds.Y <= limit {
			crates = append(crates, c)
		}
	}
	g.crates = crates
}
