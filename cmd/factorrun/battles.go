package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/factor-run/internal/games/factorrun"
	"github.com/vovakirdan/factor-run/internal/storage"
)

var flagBattleLimit int

var battlesCmd = &cobra.Command{
	Use:   "battles",
	Short: "Show the battle log",
	Long: `Display the most recent battles, newest first, with outcome totals.

Examples:
  factorrun battles
  factorrun battles --limit 50`,
	Args: cobra.NoArgs,
	RunE: runBattles,
}

func init() {
	battlesCmd.Flags().IntVar(&flagBattleLimit, "limit", 20, "Number of battles to show")
}

func runBattles(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer store.Close()

	battles, err := store.RecentBattles(factorrun.GameID, flagBattleLimit)
	if err != nil {
		return fmt.Errorf("retrieving battles: %w", err)
	}

	fmt.Println("Battles - Factor Run")
	fmt.Println()

	if len(battles) == 0 {
		fmt.Println("No battles fought yet.")
		return nil
	}

	fmt.Printf("  %-5s  %-7s  %-7s  %-6s  %-7s  %s\n", "Level", "Balls", "Army", "Result", "Clashes", "Date")
	fmt.Printf("  %-5s  %-7s  %-7s  %-6s  %-7s  %s\n", "-----", "-----", "----", "------", "-------", "----")
	for _, b := range battles {
		fmt.Printf("  %-5d  %-7d  %-7d  %-6s  %-7d  %s\n",
			b.Level, b.PlayerCount, b.EnemyCount, b.Outcome, b.Clashes,
			b.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetBattleStats(factorrun.GameID)
	if err != nil {
		return fmt.Errorf("retrieving battle stats: %w", err)
	}
	fmt.Println()
	fmt.Printf("Won %d  Lost %d  Drawn %d  (of %d)\n", stats.Wins, stats.Losses, stats.Draws, stats.Total())
	return nil
}
