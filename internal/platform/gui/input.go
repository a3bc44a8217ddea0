package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/factor-run/internal/core"
)

// command is a frontend action that never reaches the game.
type command int

const (
	commandNone command = iota
	commandQuit
	commandSound
)

// Held arrow keys nudge the target once on press, then every repeatEvery ticks
// after repeatDelay.
const (
	repeatDelay = 12
	repeatEvery = 4
)

// inputState remembers the last cursor position so an idle mouse does not
// override keyboard steering.
type inputState struct {
	lastX, lastY int
	seen         bool
}

func newInputState() *inputState {
	return &inputState{}
}

// poll reads keyboard, mouse and touch for one tick.
func (s *inputState) poll(worldW float64) (core.InputFrame, command) {
	frame := core.NewInputFrame()

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return frame, commandQuit
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		return frame, commandSound
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		frame.Set(core.ActionPause)
	}
	if held(ebiten.KeyArrowLeft) || held(ebiten.KeyA) {
		frame.Set(core.ActionLeft)
	}
	if held(ebiten.KeyArrowRight) || held(ebiten.KeyD) {
		frame.Set(core.ActionRight)
	}

	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		x, _ := ebiten.TouchPosition(ids[0])
		frame.SetPointer(pointerFromX(x, worldW))
		return frame, commandNone
	}

	x, y := ebiten.CursorPosition()
	moved := s.seen && (x != s.lastX || y != s.lastY)
	s.lastX, s.lastY, s.seen = x, y, true
	if moved {
		frame.SetPointer(pointerFromX(x, worldW))
	}
	return frame, commandNone
}

func held(k ebiten.Key) bool {
	return keyRepeat(inpututil.KeyPressDuration(k))
}

// keyRepeat reports whether a key held for d ticks fires this tick.
func keyRepeat(d int) bool {
	if d <= 0 {
		return false
	}
	if d == 1 {
		return true
	}
	return d > repeatDelay && (d-repeatDelay)%repeatEvery == 0
}

// pointerFromX converts a logical x coordinate to the normalized pointer.
func pointerFromX(x int, worldW float64) float64 {
	if worldW <= 0 {
		return 0
	}
	return core.ClampF(float64(x)/worldW, 0, 1)
}
