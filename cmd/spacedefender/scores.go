package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-defender/internal/platform/tui"
)

var (
	flagScoresLimit int
	flagScoresClear bool
	flagScoresTUI   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high scores",
	Long: `Display the best results recorded in the results store.

Examples:
  spacedefender scores
  spacedefender scores --limit 20
  spacedefender scores --db postgres://localhost/defender
  spacedefender scores --clear
  spacedefender scores -i`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of results to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every recorded result")
	scoresCmd.Flags().BoolVarP(&flagScoresTUI, "interactive", "i", false, "Browse the scores in a full-screen table")
}

func runScores(_ *cobra.Command, _ []string) {
	a, err := setup(setupOptions{logToFile: flagScoresTUI, store: true})
	if err != nil {
		fail("%v", err)
	}
	if a.store == nil {
		a.Close()
		os.Exit(1)
	}
	defer a.Close()

	if flagScoresTUI {
		width, height := terminalSize()
		if _, err := tui.RunScoreboard(a.store, width, height); err != nil {
			a.Close()
			fail("running scoreboard: %v", err)
		}
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), openTimeout)
	defer cancel()

	if flagScoresClear {
		if err := a.store.Clear(ctx); err != nil {
			cancel()
			a.Close()
			fail("clearing scores: %v", err)
		}
		fmt.Println("All results deleted.")
		return
	}

	scores, err := a.store.TopResults(ctx, flagScoresLimit)
	if err != nil {
		cancel()
		a.Close()
		fail("retrieving scores: %v", err)
	}

	fmt.Println("High Scores - Space Defender")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'spacedefender' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-20s  %-8s  %-5s  %-10s  %s\n", "Rank", "Player", "Score", "Level", "Difficulty", "Date")
	fmt.Printf("  %-4s  %-20s  %-8s  %-5s  %-10s  %s\n", "----", "------", "-----", "-----", "----------", "----")

	for i, entry := range scores {
		dateStr := entry.AchievedOn.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-20s  %-8d  %-5d  %-10s  %s\n",
			i+1, entry.PlayerName, entry.Score, entry.Level, entry.Difficulty, dateStr)
	}

	fmt.Println()
	stats, err := a.store.Stats(ctx)
	if err == nil {
		fmt.Printf("Games: %d  Best: %d  Average: %.0f\n", stats.Games, stats.HighScore, stats.AvgScore)
	}
}
