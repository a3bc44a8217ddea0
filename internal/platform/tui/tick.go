// Package tui provides the Bubble Tea frontend for Factor Run.
// It handles the terminal UI loop, input mapping, menus and the SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/factor-run/internal/core"
)

// TickMsg is sent to trigger a game simulation tick.
// Each game model only accepts ticks from its own loop.
type TickMsg struct {
	Time time.Time
	loop int64
}

var loopIDs atomic.Int64

func newLoopID() int64 {
	return loopIDs.Add(1)
}

// tickCmd returns a Bubble Tea command that fires one tick after a frame period.
func tickCmd(cfg core.RuntimeConfig, loop int64) tea.Cmd {
	return tea.Tick(cfg.FramePeriod(), func(t time.Time) tea.Msg {
		return TickMsg{Time: t, loop: loop}
	})
}
