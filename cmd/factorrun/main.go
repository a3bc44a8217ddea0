// factorrun is a gate-and-battle runner for the terminal, a desktop window
// and SSH.
//
// Usage:
//
//	factorrun play      - Play in the terminal
//	factorrun window    - Play in a desktop window
//	factorrun menu      - Home screen: start, sound, scores
//	factorrun serve     - Start SSH server for remote play
//	factorrun scores    - Show top scores
//	factorrun battles   - Show the battle log
//	factorrun config    - Print the effective game config
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.factorrun/factorrun.db)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/factor-run/internal/storage"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string

	// Game flags shared by play, window, menu and serve
	flagConfig     string
	flagDifficulty string
	flagMute       bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "factorrun",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "factorrun",
	Short: "Factor Run - steer through gates, multiply your balls, win the battle",
	Long: `Factor Run is a one-screen arcade runner. Steer a column of balls through
falling gates that multiply or divide it. Every fifth gate drops a crate;
hitting it starts a battle against an army that scales with your level.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  menu     - Home screen with sound toggle and scores
  serve    - Start SSH server for remote play
  scores   - View top scores
  battles  - View recent battles
  config   - Print the effective game config

Examples:
  factorrun play
  factorrun window --difficulty hard
  factorrun menu --mute
  factorrun serve --ssh :2222
  factorrun scores`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(battlesCmd)
	rootCmd.AddCommand(configCmd)
}

// addGameFlags registers --config, --difficulty and --mute on cmd.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound off")
}
