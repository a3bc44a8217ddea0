package factorrun

import (
	"math"

	"github.com/vovakirdan/factor-run/internal/core"
)

// GateView is the render-facing copy of a gate.
type GateView struct {
	Bounds   core.RectF
	Label    string
	Multiply bool
	Used     bool
}

// Snapshot is an immutable copy of everything a frontend draws.
// Slices are deep copies, so a snapshot stays valid after further steps.
type Snapshot struct {
	Tick   int
	Phase  Phase
	Paused bool
	Level  int
	Score  int
	Balls  int

	WorldW, WorldH float64

	PlayerX, PlayerY float64
	Radius, Spacing  float64

	Gates   []GateView
	Crates  []core.RectF
	Enemies []Enemy

	GatesPassed   int
	CratesSpawned int
	Clashes       int
	ClashPending  bool

	Outcome Outcome
	EndText string
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:          g.tickCount,
		Phase:         g.phase,
		Paused:        g.paused,
		Level:         g.level,
		Score:         g.score,
		Balls:         g.ballCount,
		WorldW:        g.cfg.World.Width,
		WorldH:        g.cfg.World.Height,
		PlayerX:       g.playerX,
		PlayerY:       g.playerY(),
		Radius:        g.cfg.Player.Radius,
		Spacing:       g.cfg.Player.Spacing,
		GatesPassed:   g.gatesPassed,
		CratesSpawned: g.cratesSpawned,
	}

	snap.Gates = make([]GateView, len(g.gates))
	for i, gate := range g.gates {
		snap.Gates[i] = GateView{
			Bounds:   gate.Bounds,
			Label:    gate.Op.Label(),
			Multiply: gate.Op.Kind == OpMultiply,
			Used:     gate.Used,
		}
	}

	snap.Crates = make([]core.RectF, len(g.crates))
	for i, c := range g.crates {
		snap.Crates[i] = c.Bounds
	}

	if g.battle != nil {
		snap.Enemies = append([]Enemy(nil), g.battle.Enemies...)
		snap.Clashes = g.battle.Clashes
		snap.ClashPending = g.battle.pending
	}

	if g.end != nil {
		snap.Outcome = g.end.Outcome
		snap.EndText = g.end.Text
	}

	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)                     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Phase)              //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)              //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)              //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Balls)              //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.GatesPassed)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.CratesSpawned)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Clashes)            //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Outcome)            //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.PlayerX)

	for _, gate := range snap.Gates {
		h = h*31 + math.Float64bits(gate.Bounds.X)
		h = h*31 + math.Float64bits(gate.Bounds.Y)
		for _, r := range gate.Label {
			h = h*31 + uint64(r) //#nosec G115 -- hash computation
		}
		if gate.Used {
			h = h*31 + 1
		}
	}

	for _, c := range snap.Crates {
		h = h*31 + math.Float64bits(c.X)
		h = h*31 + math.Float64bits(c.Y)
	}

	for _, e := range snap.Enemies {
		h = h*31 + math.Float64bits(e.X)
		h = h*31 + math.Float64bits(e.Y)
	}

	return h
}

// BallXs returns the centers of the balls that fit inside the world, front
// ball first. The ball count itself is not capped by this.
func (snap *Snapshot) BallXs() []float64 {
	if snap.Balls <= 0 || snap.Spacing <= 0 {
		return nil
	}
	last := snap.Balls - 1
	if limit := int(math.Floor((snap.WorldW - snap.PlayerX) / snap.Spacing)); limit < last {
		last = limit
	}
	if last < 0 {
		return nil
	}

	xs := make([]float64, last+1)
	for i := range xs {
		xs[i] = snap.PlayerX + float64(i)*snap.Spacing
	}
	return xs
}
