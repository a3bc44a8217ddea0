// Package gui runs Factor Run in a desktop window with Ebiten.
package gui

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/factor-run/internal/audio"
	"github.com/vovakirdan/factor-run/internal/core"
	"github.com/vovakirdan/factor-run/internal/games/factorrun"
	"github.com/vovakirdan/factor-run/internal/platform"
	"github.com/vovakirdan/factor-run/internal/storage"
)

// Options configures an App.
type Options struct {
	Store  *storage.Store // may be nil
	Player audio.Player   // may be nil
	Scale  float64        // window size relative to the world, default 1
}

// App adapts a Factor Run game to ebiten.Game.
type App struct {
	game     *factorrun.Game
	config   core.RuntimeConfig
	opts     Options
	player   audio.Player
	recorder *platform.Recorder
	input    *inputState
	state    core.GameState
	flash    string
	flashTTL int
}

// New creates an App and resets the game.
func New(game *factorrun.Game, cfg core.RuntimeConfig, opts Options) *App {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}

	player := opts.Player
	if player == nil {
		player = audio.NewNopPlayer(true)
	}

	var store platform.Store
	if opts.Store != nil {
		store = opts.Store
	}

	game.Reset(cfg)
	return &App{
		game:     game,
		config:   cfg,
		opts:     opts,
		player:   player,
		recorder: platform.NewRecorder(game.ID(), store, player),
		input:    newInputState(),
	}
}

// Update polls input and advances the game by one tick.
func (a *App) Update() error {
	snap := a.game.Snapshot()
	frame, cmd := a.input.poll(snap.WorldW)
	switch cmd {
	case commandQuit:
		return ebiten.Termination
	case commandSound:
		a.toggleSound()
	}

	a.step(frame)
	return nil
}

// step runs one simulation frame and applies its side effects.
func (a *App) step(frame core.InputFrame) {
	res := a.game.Step(frame)
	a.state = res.State
	a.recorder.Record(res)

	if a.flashTTL > 0 {
		a.flashTTL--
		if a.flashTTL == 0 {
			a.flash = ""
		}
	}
	if err := a.recorder.TakeErr(); err != nil {
		a.setFlash("save failed: progress is not being stored")
	}
}

func (a *App) toggleSound() {
	muted := !a.player.Muted()
	a.player.SetMuted(muted)
	if a.opts.Store != nil {
		if err := a.opts.Store.SetSoundEnabled(!muted); err != nil {
			a.setFlash("could not save sound setting")
			return
		}
	}
	if muted {
		a.setFlash("sound off")
	} else {
		a.setFlash("sound on")
	}
}

func (a *App) setFlash(text string) {
	a.flash = text
	a.flashTTL = 2 * max(1, a.config.TickRate)
}

// Layout fixes the logical screen to the world size; Ebiten scales it.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	cfg := a.game.Config()
	return int(cfg.World.Width), int(cfg.World.Height)
}

// Run opens the window and blocks until it is closed.
func Run(a *App) error {
	cfg := a.game.Config()
	ebiten.SetWindowTitle(a.game.Title())
	ebiten.SetWindowSize(int(cfg.World.Width*a.opts.Scale), int(cfg.World.Height*a.opts.Scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(max(1, a.config.TickRate))

	err := ebiten.RunGame(a)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
