package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/factor-run/internal/audio"
	"github.com/vovakirdan/factor-run/internal/core"
	"github.com/vovakirdan/factor-run/internal/registry"
	"github.com/vovakirdan/factor-run/internal/storage"
)

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenScores
)

// SessionModel runs the whole flow in one program: menu -> game -> menu,
// with the scoreboard reachable from the menu. Used locally and over SSH.
type SessionModel struct {
	gameID     string
	opts       Options
	config     core.RuntimeConfig
	screen     sessionScreen
	menu       MenuModel
	gameModel  GameModel
	scoreboard ScoreboardModel
	quitting   bool
}

// NewSessionModel creates a session starting at the home menu.
func NewSessionModel(gameID string, cfg core.RuntimeConfig, opts Options) SessionModel {
	opts.Standalone = false
	if opts.Player == nil {
		opts.Player = audio.NewNopPlayer(false)
	}
	return SessionModel{
		gameID: gameID,
		opts:   opts,
		config: cfg,
		menu:   newSessionMenu(gameID, cfg, opts),
	}
}

// newSessionMenu builds the home screen. Remote sessions keep the sound
// toggle out of the shared store.
func newSessionMenu(gameID string, cfg core.RuntimeConfig, opts Options) MenuModel {
	menu := NewMenuModel(gameID, opts.Store, opts.Player, cfg)
	menu.saveSound = !opts.Remote
	return menu
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode. The menu's own quit command
// is dropped whenever it hands control to another screen.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.menu.Chosen() {
	case MenuChoiceStart:
		game, err := registry.Create(m.gameID)
		if err != nil {
			m.menu = newSessionMenu(m.gameID, m.config, m.opts)
			return m, nil
		}
		m.config.Seed = 0
		m.gameModel = NewGameModel(game, m.config, m.opts)
		m.screen = screenGame
		return m, m.gameModel.Init()

	case MenuChoiceScores:
		m.scoreboard = NewScoreboardModel(m.gameID, m.opts.Store, m.config.ScreenW, m.config.ScreenH)
		m.screen = screenScores
		return m, m.scoreboard.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = gameModel
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameModel.BackToMenu() {
		return m.toMenu()
	}

	return m, cmd
}

// updateScores handles updates when the scoreboard is open.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scoreboard.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = sb
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.scoreboard.IsGoingBack() {
		return m.toMenu()
	}

	return m, cmd
}

func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.menu = newSessionMenu(m.gameID, m.config, m.opts)
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.gameModel.View()
	case screenScores:
		return m.scoreboard.View()
	}
	return m.menu.View()
}

// RunSession runs the menu flow in the local terminal.
func RunSession(gameID string, store *storage.Store, player audio.Player, cfg core.RuntimeConfig) error {
	model := NewSessionModel(gameID, cfg, Options{
		Store:         store,
		Player:        player,
		ScreenshotDir: DefaultScreenshotDir(),
		Clipboard:     true,
	})

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	_, err := p.Run()
	return err
}
