package gui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/factor-run/internal/games/factorrun"
)

var face font.Face = basicfont.Face7x13

var (
	colorBackground = color.NRGBA{18, 18, 28, 255}
	colorHUD        = color.NRGBA{239, 229, 182, 255}
	colorDim        = color.NRGBA{140, 138, 163, 255}
	colorOverlay    = color.NRGBA{0, 0, 0, 170}
	colorBox        = color.NRGBA{36, 34, 52, 240}
)

// gateColor returns the fill for a gate: multipliers and dividers differ,
// used gates fade.
func gateColor(g factorrun.GateView) color.Color {
	switch {
	case g.Used:
		return colornames.Dimgray
	case g.Multiply:
		return colornames.Darkorange
	default:
		return colornames.Mediumpurple
	}
}

// Draw renders the current snapshot.
func (a *App) Draw(screen *ebiten.Image) {
	snap := a.game.Snapshot()
	screen.Fill(colorBackground)

	for _, g := range snap.Gates {
		b := g.Bounds
		vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), gateColor(g), false)
		vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 2, colornames.Gold, false)
		drawCentered(screen, g.Label, int(b.X+b.W/2), int(b.Y+b.H/2), color.White)
	}

	for _, c := range snap.Crates {
		vector.DrawFilledRect(screen, float32(c.X), float32(c.Y), float32(c.W), float32(c.H), colornames.Saddlebrown, false)
		vector.StrokeRect(screen, float32(c.X), float32(c.Y), float32(c.W), float32(c.H), 2, colornames.Burlywood, false)
		drawCentered(screen, factorrun.CrateText, int(c.X+c.W/2), int(c.Y+c.H/2), colornames.Wheat)
	}

	r := float32(snap.Radius)
	for _, e := range snap.Enemies {
		vector.DrawFilledCircle(screen, float32(e.X), float32(e.Y), r, colornames.Crimson, true)
	}

	for i, x := range snap.BallXs() {
		c := colornames.Limegreen
		if i == 0 {
			c = colornames.Deepskyblue
		}
		vector.DrawFilledCircle(screen, float32(x), float32(snap.PlayerY), r, c, true)
	}

	a.drawHUD(screen, snap)

	switch {
	case snap.Phase == factorrun.PhaseEnd:
		drawMessage(screen, snap, strings.Split(snap.EndText, "\n"))
	case snap.Paused:
		drawMessage(screen, snap, []string{"PAUSED", "p to resume"})
	}
}

func (a *App) drawHUD(screen *ebiten.Image, snap factorrun.Snapshot) {
	w := int(snap.WorldW)

	text.Draw(screen, fmt.Sprintf("Level: %d", snap.Level), face, 8, 18, colorHUD)
	drawCentered(screen, fmt.Sprintf("Balls: %d", snap.Balls), w/2, 14, colorHUD)
	score := fmt.Sprintf("Score: %d", snap.Score)
	text.Draw(screen, score, face, w-8-text.BoundString(face, score).Dx(), 18, colorHUD)

	status := fmt.Sprintf("Best: %d", a.recorder.Best())
	if a.player.Muted() {
		status += "  (muted)"
	}
	if a.flash != "" {
		status += "  " + a.flash
	}
	text.Draw(screen, status, face, 8, int(snap.WorldH)-8, colorDim)
}

// drawMessage dims the field and shows lines in a centered box.
func drawMessage(screen *ebiten.Image, snap factorrun.Snapshot, lines []string) {
	w, h := float32(snap.WorldW), float32(snap.WorldH)
	vector.DrawFilledRect(screen, 0, 0, w, h, colorOverlay, false)

	boxW, boxH := float32(220), float32(40+24*len(lines))
	x, y := (w-boxW)/2, (h-boxH)/2
	vector.DrawFilledRect(screen, x, y, boxW, boxH, colorBox, false)
	vector.StrokeRect(screen, x, y, boxW, boxH, 2, colorHUD, false)

	for i, line := range lines {
		drawCentered(screen, line, int(w/2), int(y)+32+24*i, colorHUD)
	}
}

// drawCentered draws text with its bounding box centered on (cx, cy).
func drawCentered(screen *ebiten.Image, s string, cx, cy int, clr color.Color) {
	b := text.BoundString(face, s)
	text.Draw(screen, s, face, cx-b.Dx()/2, cy+b.Dy()/2, clr)
}
