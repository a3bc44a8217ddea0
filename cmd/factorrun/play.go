package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/factor-run/internal/games/factorrun"
	"github.com/vovakirdan/factor-run/internal/platform/tui"
	"github.com/vovakirdan/factor-run/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a run in the terminal.

Controls:
  Mouse        - Steer the column
  Left/Right   - Nudge the column (also a/d, h/l)
  P/Esc        - Pause
  M            - Toggle sound
  Ctrl+S       - Save a text screenshot
  Ctrl+Y       - Copy the frame to the clipboard
  B            - Leave the game
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower gates, smaller armies
  normal - Defaults
  hard   - Faster gates, bigger armies, speed scales with level
  fixed  - No per-level speed scaling

Examples:
  factorrun play
  factorrun play --difficulty hard
  factorrun play --config ./my-factorrun.yaml
  factorrun play --seed 42 --mute`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
}

func runPlay(_ *cobra.Command, _ []string) error {
	if err := applyGameFlags(); err != nil {
		return err
	}

	game, err := registry.Create(factorrun.GameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store := openStore()
	player := openPlayer(store)
	defer closeAll(store, player)

	err = tui.Run(game, terminalConfig(), tui.Options{
		Store:         store,
		Player:        player,
		ScreenshotDir: tui.DefaultScreenshotDir(),
		Clipboard:     true,
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
