package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vmatyush/brickstorm/internal/storage"
)

var flagEndlessScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores and run statistics",
	Long: `Display the top 10 high scores and aggregate run statistics.

Examples:
  brickstorm scores
  brickstorm scores --endless`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagEndlessScores, "endless", false, "Show endless mode scores")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := "brickstorm"
	title := "Brickstorm"
	if flagEndlessScores {
		gameID = "brickstorm_endless"
		title = "Brickstorm Endless"
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'brickstorm play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	// Aggregate run stats
	stats, err := store.GetGameStats(gameID)
	if err != nil || stats.GamesCount == 0 {
		return
	}
	wins, _ := store.WinCount(gameID)

	fmt.Println()
	fmt.Printf("Runs: %d   Wins: %d   Best: %d   Average: %.0f\n",
		stats.GamesCount, wins, stats.HighScore, stats.AvgScore)

	runs, err := store.RecentRuns(gameID, 5)
	if err != nil || len(runs) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Recent runs:")
	for _, r := range runs {
		outcome := "lost"
		if r.Won {
			outcome = "WON"
		}
		fmt.Printf("  %s  score %-7d level %-2d %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.Score, r.Level+1, outcome)
	}
}
