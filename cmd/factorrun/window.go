package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/factor-run/internal/core"
	"github.com/vovakirdan/factor-run/internal/games/factorrun"
	"github.com/vovakirdan/factor-run/internal/platform/gui"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window and start a run.

Controls:
  Mouse/Touch  - Steer the column
  Left/Right   - Nudge the column (also a/d)
  P/Esc        - Pause
  M            - Toggle sound
  Q            - Quit

Examples:
  factorrun window
  factorrun window --scale 1.5 --difficulty easy`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	addGameFlags(windowCmd)
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size relative to the 480x800 field")
}

func runWindow(_ *cobra.Command, _ []string) error {
	if err := applyGameFlags(); err != nil {
		return err
	}

	store := openStore()
	player := openPlayer(store)
	defer closeAll(store, player)

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	app := gui.New(factorrun.New(), cfg, gui.Options{
		Store:  store,
		Player: player,
		Scale:  flagScale,
	})
	if err := gui.Run(app); err != nil {
		return fmt.Errorf("running window: %w", err)
	}
	return nil
}
