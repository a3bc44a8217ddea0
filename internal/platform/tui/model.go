package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/factor-run/internal/audio"
	"github.com/vovakirdan/factor-run/internal/core"
	"github.com/vovakirdan/factor-run/internal/platform"
	"github.com/vovakirdan/factor-run/internal/registry"
	"github.com/vovakirdan/factor-run/internal/storage"
)

// Options configures a GameModel.
type Options struct {
	Store  *storage.Store // may be nil: play without persistence
	Player audio.Player   // may be nil: silent

	// Standalone makes "back" exit the program instead of returning to a menu.
	Standalone bool

	// ScreenshotDir receives ctrl+s dumps. Empty disables screenshots.
	ScreenshotDir string

	// Clipboard enables ctrl+y. Off for remote sessions, where the
	// clipboard would be the server's.
	Clipboard bool

	// Remote marks an SSH session. The store is shared by every connection,
	// so the sound toggle stays per-session and is not persisted.
	Remote bool
}

// DefaultScreenshotDir returns ~/.factorrun/screenshots.
func DefaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".factorrun", "screenshots")
}

// GameModel is the Bubble Tea model that runs one game.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       Options
	player     audio.Player
	recorder   *platform.Recorder
	keyMapper  *KeyMapper
	loop       int64
	inputFrame core.InputFrame
	gameState  core.GameState
	flash      string
	flashTicks int
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a model for the given game.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, opts Options) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	player := opts.Player
	if player == nil {
		player = audio.NewNopPlayer(true)
	}

	var store platform.Store
	if opts.Store != nil {
		store = opts.Store
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH)),
		config:     cfg,
		opts:       opts,
		player:     player,
		recorder:   platform.NewRecorder(game.ID(), store, player),
		keyMapper:  NewKeyMapper(),
		loop:       newLoopID(),
		inputFrame: core.NewInputFrame(),
	}
}

// saveFailedFlash is shown when the database rejects a score, battle or best score.
const saveFailedFlash = "Save failed: progress is not being stored"

// playfieldHeight leaves the last terminal row for the status line.
func playfieldHeight(h int) int {
	return max(1, h-1)
}

// Init resets the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config, m.loop)
}

// Update handles incoming messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, m.screen.Width(), &m.inputFrame)
		return m, nil
	case tea.WindowSizeMsg:
		// The game draws in world units, so a resize only changes the viewport.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
		return m, nil
	case TickMsg:
		if msg.loop != m.loop {
			return m, nil
		}
		return m.handleTick()
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "ctrl+y":
		m.copyFrame()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		m.backToMenu = true
		if m.opts.Standalone {
			return m, tea.Quit
		}
		return m, nil
	case action == core.ActionSound:
		m.toggleSound()
		return m, nil
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleTick advances the simulation by one frame.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.recorder.Record(result)
	m.inputFrame.Clear()

	if m.flashTicks > 0 {
		m.flashTicks--
		if m.flashTicks == 0 {
			m.flash = ""
		}
	}
	if err := m.recorder.TakeErr(); err != nil {
		m.setFlash(saveFailedFlash)
	}

	return m, tickCmd(m.config, m.loop)
}

func (m *GameModel) setFlash(text string) {
	m.flash = text
	m.flashTicks = 2 * max(1, m.config.TickRate)
}

// toggleSound flips muting and persists the choice.
func (m *GameModel) toggleSound() {
	muted := !m.player.Muted()
	m.player.SetMuted(muted)
	if m.opts.Store != nil && !m.opts.Remote {
		if err := m.opts.Store.SetSoundEnabled(!muted); err != nil {
			m.setFlash("Could not save sound setting")
			return
		}
	}
	if muted {
		m.setFlash("Sound off")
	} else {
		m.setFlash("Sound on")
	}
}

// saveScreenshot saves the current frame as plain text.
func (m *GameModel) saveScreenshot() {
	if m.opts.ScreenshotDir == "" {
		return
	}
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.opts.ScreenshotDir, 0o755); err != nil {
		m.setFlash("Screenshot failed")
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.opts.ScreenshotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.setFlash("Screenshot failed")
		return
	}
	m.setFlash("Saved " + filepath.Base(path))
}

// copyFrame puts the current frame on the system clipboard.
func (m *GameModel) copyFrame() {
	if !m.opts.Clipboard || clipboard.Unsupported {
		m.setFlash("Clipboard unavailable")
		return
	}
	m.game.Render(m.screen)
	if err := clipboard.WriteAll(m.screen.String()); err != nil {
		m.setFlash("Clipboard unavailable")
		return
	}
	m.setFlash("Copied frame")
}

// View renders the game and the status line.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" +
		renderStatusLine(m.screen.Width(), m.recorder.Best(), m.player.Muted(), m.flash)
}

// IsQuitting returns true if the user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to leave the game.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// State returns the game state after the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// Best returns the best score known to the model.
func (m GameModel) Best() int {
	return m.recorder.Best()
}

// Run starts a standalone Bubble Tea program for one game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	opts.Standalone = true
	model := NewGameModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	_, err := p.Run()
	return err
}
