package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/factor-run/internal/audio"
	"github.com/vovakirdan/factor-run/internal/config"
	"github.com/vovakirdan/factor-run/internal/core"
	"github.com/vovakirdan/factor-run/internal/games/factorrun"
	"github.com/vovakirdan/factor-run/internal/storage"
)

// applyGameFlags hands --config and --difficulty to the game package.
func applyGameFlags() error {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	if flagConfig != "" {
		// Surface a broken --config here; the game itself would silently fall back.
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	factorrun.SetConfigPath(flagConfig)
	factorrun.SetDifficultyPreset(flagDifficulty)
	return nil
}

// openStore opens the database. Failure is logged and play continues
// without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open database, scores will not be saved", "error", err)
		return nil
	}
	return store
}

// openPlayer starts audio. --mute or a stored "off" start it muted.
func openPlayer(store *storage.Store) audio.Player {
	muted := flagMute
	if store != nil && !muted {
		on, err := store.SoundEnabled()
		if err != nil {
			logger.Warn("could not read sound setting", "error", err)
		} else {
			muted = !on
		}
	}

	player, err := audio.New(muted)
	if err != nil {
		logger.Warn("audio unavailable, playing silently", "error", err)
	}
	return player
}

// terminalConfig builds a runtime config sized to the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func closeAll(store *storage.Store, player audio.Player) {
	if player != nil {
		player.Close()
	}
	if store != nil {
		store.Close()
	}
}
