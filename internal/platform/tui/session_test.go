package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/factor-run/internal/audio"
	"github.com/vovakirdan/factor-run/internal/games/factorrun"
	"github.com/vovakirdan/factor-run/internal/storage"
)

func updateSession(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T, expected SessionModel", next)
	}
	return sm, cmd
}

func TestSessionStartAndBack(t *testing.T) {
	m := NewSessionModel(factorrun.GameID, testConfig(), Options{})

	m, cmd := updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame {
		t.Fatalf("Start should open the game, screen = %v", m.screen)
	}
	if cmd == nil {
		t.Error("starting a game should start its tick loop")
	}

	m, _ = updateSession(t, m, runeKey('b'))
	if m.screen != screenMenu {
		t.Errorf("b should return to the menu, screen = %v", m.screen)
	}
	if m.quitting {
		t.Error("returning to the menu must not quit")
	}
}

func TestSessionScoresAndBack(t *testing.T) {
	store := openTestStore(t)
	m := NewSessionModel(factorrun.GameID, testConfig(), Options{Store: store})

	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenScores {
		t.Fatalf("Scores entry should open the scoreboard, screen = %v", m.screen)
	}

	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Errorf("esc should return to the menu, screen = %v", m.screen)
	}
}

func TestSessionQuit(t *testing.T) {
	m := NewSessionModel(factorrun.GameID, testConfig(), Options{})
	m, cmd := updateSession(t, m, runeKey('q'))
	if !m.quitting || cmd == nil {
		t.Error("q in the menu should quit the session")
	}
	if m.View() != "" {
		t.Error("quitting session renders nothing")
	}
}

func TestSessionForwardsResize(t *testing.T) {
	m := NewSessionModel(factorrun.GameID, testConfig(), Options{})
	m, _ = updateSession(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.gameModel.screen.Width() != 120 {
		t.Errorf("game should start at the resized width, got %d", m.gameModel.screen.Width())
	}
}

func TestRemoteSessionKeepsSoundSettingLocal(t *testing.T) {
	store := openTestStore(t)
	player := audio.NewNopPlayer(false)
	m := NewSessionModel(factorrun.GameID, testConfig(), Options{Store: store, Player: player, Remote: true})

	// Sound entry in the menu.
	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.menu.SoundOn() {
		t.Error("menu toggle should still switch sound off for the session")
	}

	// m inside a game.
	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame {
		t.Fatalf("Start should open the game, screen = %v", m.screen)
	}
	m, _ = updateSession(t, m, runeKey('m'))
	m, _ = updateSession(t, m, runeKey('m'))

	if _, ok, err := store.Setting(storage.SettingSound); ok || err != nil {
		t.Errorf("remote session wrote the shared sound setting (ok=%v, err=%v)", ok, err)
	}
}

func TestLocalSessionPersistsSoundSetting(t *testing.T) {
	store := openTestStore(t)
	m := NewSessionModel(factorrun.GameID, testConfig(), Options{Store: store, Player: audio.NewNopPlayer(false)})

	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyDown})
	updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if on, err := store.SoundEnabled(); err != nil || on {
		t.Errorf("SoundEnabled() = %v, %v, expected the local toggle to be saved as off", on, err)
	}
}
