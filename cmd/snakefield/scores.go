package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snakefield/internal/platform/tui"
	"github.com/vovakirdan/snakefield/internal/storage"
)

var (
	flagLimit       int
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best rounds and the stored high score.

Examples:
  snakefield scores
  snakefield scores --limit 25
  snakefield scores --interactive
  snakefield scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of rounds to show")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded rounds and the high score")
}

func runScores(_ *cobra.Command, _ []string) {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(storage.DefaultGameID); err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Scores cleared.")
		return
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	scores, err := store.TopScores(storage.DefaultGameID, flagLimit)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - Snake")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snakefield play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-6s  %-4s  %s\n", "Rank", "Score", "Length", "Won", "When")
	fmt.Printf("  %-4s  %-8s  %-6s  %-4s  %s\n", "----", "-----", "------", "---", "----")

	now := time.Now()
	for i, entry := range scores {
		won := ""
		if entry.Won {
			won = "yes"
		}
		fmt.Printf("  %-4d  %-8s  %-6d  %-4s  %s\n",
			i+1,
			humanize.Comma(int64(entry.Score)),
			entry.Length,
			won,
			humanize.RelTime(entry.CreatedAt, now, "ago", "from now"),
		)
	}

	fmt.Println()
	if highScore, err := store.HighScore(storage.DefaultGameID); err == nil {
		fmt.Printf("Best: %s\n", humanize.Comma(int64(highScore)))
	}
	if stats, err := store.GetGameStats(storage.DefaultGameID); err == nil {
		fmt.Printf("Rounds: %s (%d won) across %d sessions, average %.1f\n",
			humanize.Comma(int64(stats.GamesCount)), stats.Wins, stats.Sessions, stats.AvgScore)
	}
}
