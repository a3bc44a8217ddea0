package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/factor-run/internal/audio"
	"github.com/vovakirdan/factor-run/internal/core"
	"github.com/vovakirdan/factor-run/internal/storage"
)

// MenuChoice is an entry of the home screen.
type MenuChoice int

const (
	MenuChoiceNone MenuChoice = iota
	MenuChoiceStart
	MenuChoiceSound
	MenuChoiceScores
	MenuChoiceQuit
)

var menuChoices = []MenuChoice{MenuChoiceStart, MenuChoiceSound, MenuChoiceScores, MenuChoiceQuit}

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	menuBestStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("51"))
	menuFooterStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the home screen.
type MenuModel struct {
	gameID    string
	cursor    int
	width     int
	height    int
	store     *storage.Store
	player    audio.Player
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	best      int
	soundOn   bool
	saveSound bool
	quitting  bool
	chosen    MenuChoice
	err       string
}

// NewMenuModel creates the home screen for gameID. Store and player may be nil.
func NewMenuModel(gameID string, store *storage.Store, player audio.Player, cfg core.RuntimeConfig) MenuModel {
	m := MenuModel{
		gameID:    gameID,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		store:     store,
		player:    player,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		soundOn:   true,
		saveSound: true,
	}
	if store != nil {
		if best, err := store.BestScore(gameID); err == nil {
			m.best = best
		}
		if on, err := store.SoundEnabled(); err == nil {
			m.soundOn = on
		}
	}
	// The player already reflects the stored setting and any --mute flag.
	if player != nil {
		m.soundOn = !player.Muted()
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(menuChoices)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		switch choice := menuChoices[m.cursor]; choice {
		case MenuChoiceSound:
			m.toggleSound()
		case MenuChoiceQuit:
			m.quitting = true
			return m, tea.Quit
		default:
			m.chosen = choice
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m *MenuModel) toggleSound() {
	m.soundOn = !m.soundOn
	if m.player != nil {
		m.player.SetMuted(!m.soundOn)
	}
	m.err = ""
	if m.store != nil && m.saveSound {
		if err := m.store.SetSoundEnabled(m.soundOn); err != nil {
			m.err = "could not save sound setting"
		}
	}
}

func (m MenuModel) label(c MenuChoice) string {
	switch c {
	case MenuChoiceStart:
		return "Start"
	case MenuChoiceSound:
		if m.soundOn {
			return "Sound: ON"
		}
		return "Sound: OFF"
	case MenuChoiceScores:
		return "Scores"
	case MenuChoiceQuit:
		return "Quit"
	}
	return ""
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("F A C T O R   R U N"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(menuBestStyle.Render(fmt.Sprintf("Best Score: %d", m.best)), m.width))
	b.WriteString("\n\n")

	for i, c := range menuChoices {
		line := "  " + m.label(c)
		if i == m.cursor {
			line = menuSelectedStyle.Render("> " + m.label(c))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.err != "" {
		b.WriteString(centerText(m.err, m.width))
		b.WriteString("\n")
	}
	controls := "Up/Down: Navigate  |  Enter: Select  |  Q: Quit"
	b.WriteString(centerText(menuFooterStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Chosen returns the selected entry, or MenuChoiceNone.
func (m MenuModel) Chosen() MenuChoice {
	return m.chosen
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// SoundOn reports the current sound toggle.
func (m MenuModel) SoundOn() bool {
	return m.soundOn
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width. Styled text is measured by
// its printable width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
