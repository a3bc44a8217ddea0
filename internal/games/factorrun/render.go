package factorrun

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/factor-run/internal/core"
)

// Minimum terminal size the playfield is drawn at.
const (
	MinScreenW = 30
	MinScreenH = 15
)

// Visual characters for rendering
const (
	BallChar  = '●'
	GateFill  = '▒'
	CrateFill = '▓'
	CrateText = "[#]"
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	RenderSnapshot(dst, g.Snapshot())
}

// RenderSnapshot draws a snapshot into a cell buffer. World units are
// scaled onto the screen below the HUD row.
func RenderSnapshot(dst *core.Screen, snap Snapshot) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
		return
	}

	v := newViewport(dst, snap)

	for _, gate := range snap.Gates {
		color := core.ColorOrange
		if gate.Used {
			color = core.ColorGray
		}
		r := v.rect(gate.Bounds)
		dst.DrawRectColor(r, GateFill, color)
		drawLabel(dst, r, gate.Label, core.ColorBrightYellow)
	}

	for _, c := range snap.Crates {
		r := v.rect(c)
		dst.DrawRectColor(r, CrateFill, core.ColorGray)
		drawLabel(dst, r, CrateText, core.ColorWhite)
	}

	for _, e := range snap.Enemies {
		dst.SetWithColor(v.x(e.X), v.y(e.Y), BallChar, core.ColorRed)
	}

	renderBalls(dst, v, snap)
	renderHUD(dst, snap)

	switch {
	case snap.Paused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case snap.Phase == PhaseEnd:
		lines := strings.SplitN(snap.EndText, "\n", 2)
		if len(lines) == 2 {
			drawCenteredBox(dst, lines[1], lines[0])
		}
	}
}

// viewport maps world units to cells.
type viewport struct {
	sx, sy float64
}

func newViewport(dst *core.Screen, snap Snapshot) viewport {
	return viewport{
		sx: float64(dst.Width()) / snap.WorldW,
		sy: float64(dst.Height()-1) / snap.WorldH,
	}
}

func (v viewport) x(wx float64) int {
	return int(math.Floor(wx * v.sx))
}

// y leaves row 0 to the HUD.
func (v viewport) y(wy float64) int {
	return 1 + int(math.Floor(wy*v.sy))
}

func (v viewport) rect(r core.RectF) core.Rect {
	x0, y0 := v.x(r.X), v.y(r.Y)
	x1, y1 := v.x(r.Right()), v.y(r.Bottom())
	return core.NewRect(x0, y0, core.Max(x1-x0, 3), core.Max(y1-y0, 1))
}

// renderBalls draws the visible part of the column.
func renderBalls(dst *core.Screen, v viewport, snap Snapshot) {
	y := v.y(snap.PlayerY)
	for i, x := range snap.BallXs() {
		color := core.ColorBrightGreen
		if i == 0 {
			color = core.ColorCyan
		}
		dst.SetWithColor(v.x(x), y, BallChar, color)
	}
}

// renderHUD draws level, ball count and score on row 0.
func renderHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawHLine(0, 0, dst.Width(), ' ')

	dst.DrawText(1, 0, fmt.Sprintf("Level: %d", snap.Level))
	dst.DrawTextCentered(0, fmt.Sprintf("Balls: %d", snap.Balls))

	scoreText := fmt.Sprintf("Score: %d", snap.Score)
	dst.DrawText(dst.Width()-len(scoreText)-1, 0, scoreText)
}

// drawLabel centers text on the middle row of r.
func drawLabel(dst *core.Screen, r core.Rect, text string, color core.Color) {
	n := len([]rune(text))
	dst.DrawTextColor(r.X+(r.W-n)/2, r.Y+r.H/2, text, color)
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	titleLen := len([]rune(title))
	subtitleLen := len([]rune(subtitle))

	boxW := core.Max(titleLen, subtitleLen) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-titleLen)/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-subtitleLen)/2, boxY+3, subtitle)
}
