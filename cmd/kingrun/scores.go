package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/kingrun/internal/config"
	"github.com/vovakirdan/kingrun/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresRun   string
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top high scores, optionally for one difficulty,
or every life of a single run.

Examples:
  kingrun scores
  kingrun scores --difficulty hard
  kingrun scores --limit 25
  kingrun scores --run 1b4e28ba-2fa1-11d2-883f-0016d3cca427`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().StringVar(&flagScoresRun, "run", "", "Show every life of one run id")
}

func runScores(_ *cobra.Command, _ []string) error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	var scores []storage.ScoreEntry
	title := "All difficulties"
	switch {
	case flagScoresRun != "":
		scores, err = store.RunScores(flagScoresRun)
		title = "Run " + flagScoresRun
	default:
		scores, err = store.TopScores(string(preset), flagScoresLimit)
		if preset != "" {
			title = string(preset)
		}
	}
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'kingrun play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-12s  %-8s  %-8s  %s\n", "Rank", "Player", "Score", "Mode", "Date")
	fmt.Printf("  %-4s  %-12s  %-8s  %-8s  %s\n", "----", "------", "-----", "----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-12s  %-8d  %-8s  %s\n", i+1, entry.Player, entry.Score, entry.Difficulty, dateStr)
	}

	stats, err := store.GetStats()
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  |  Lives played: %d  |  Runs: %d  |  Average: %.1f\n",
			stats.HighScore, stats.Lives, stats.Runs, stats.AvgScore)
	}
	return nil
}
