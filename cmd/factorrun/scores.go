package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/factor-run/internal/games/factorrun"
	"github.com/vovakirdan/factor-run/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show top scores",
	Long: `Display the top 10 finished runs and the best score.

Examples:
  factorrun scores
  factorrun scores --db ./factorrun.db
  factorrun scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

var flagClearScores bool

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete the score history (the best score is kept)")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer store.Close()

	if flagClearScores {
		if err := store.ClearScores(factorrun.GameID); err != nil {
			return err
		}
		fmt.Println("Score history cleared.")
		return nil
	}

	scores, err := store.TopScores(factorrun.GameID, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}
	best, err := store.BestScore(factorrun.GameID)
	if err != nil {
		return fmt.Errorf("retrieving best score: %w", err)
	}

	fmt.Println("High Scores - Factor Run")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No finished runs recorded yet.")
		if best > 0 {
			fmt.Printf("\nBest: %d\n", best)
		}
		fmt.Println()
		fmt.Println("Play 'factorrun play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-5s  %s\n", "Rank", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-10s  %-5s  %s\n", "----", "-----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-5d  %s\n", i+1, entry.Score, entry.Level, dateStr)
	}

	fmt.Println()
	fmt.Printf("Best: %d\n", best)
	return nil
}
