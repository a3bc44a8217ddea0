package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/factor-run/internal/games/factorrun"
	"github.com/vovakirdan/factor-run/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start at the home screen",
	Long: `Start Factor Run at the home screen.

The home screen shows the best score and offers Start, Sound ON/OFF,
Scores and Quit. Leaving a game with B returns here.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q            - Quit

Examples:
  factorrun menu
  factorrun menu --fps 30
  factorrun menu --db ./factorrun.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	addGameFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) error {
	if err := applyGameFlags(); err != nil {
		return err
	}

	store := openStore()
	player := openPlayer(store)
	defer closeAll(store, player)

	if err := tui.RunSession(factorrun.GameID, store, player, terminalConfig()); err != nil {
		return fmt.Errorf("running menu: %w", err)
	}
	return nil
}
