package factorrun

import "github.com/vovakirdan/factor-run/internal/core"

// Gate is a falling obstacle that applies its operation once.
type Gate struct {
	Bounds  core.RectF
	Op      Op
	Used    bool // Operation has been applied
	Counted bool // Gate has been credited as passed
}

// Crate is a falling trigger; touching it starts a battle.
type Crate struct {
	Bounds core.RectF
}

// Enemy is one unit of the enemy army.
type Enemy struct {
	X, Y float64
}

// fall moves a rectangle down by dy.
func fall(r *core.RectF, dy float64) {
	r.Y += dy
}
