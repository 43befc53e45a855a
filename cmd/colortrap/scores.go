package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ntimofeev/colortrap/internal/platform/tui"
	"github.com/ntimofeev/colortrap/internal/storage"
)

var (
	flagTop         int
	flagInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show run history and best scores",
	Long: `Display the best runs and per-level statistics.

Examples:
  colortrap scores
  colortrap scores --top 20
  colortrap scores --interactive`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagTop, "top", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagInteractive, "interactive", false, "Browse runs in a TUI table")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runs, err := store.TopScores(flagTop)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Best runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'colortrap play' to set the first score!")
		return
	}

	fmt.Printf("  %-4s  %-6s  %-8s  %-10s  %s\n", "Rank", "Level", "Score", "Outcome", "Date")
	fmt.Printf("  %-4s  %-6s  %-8s  %-10s  %s\n", "----", "-----", "-----", "-------", "----")

	for i, entry := range runs {
		fmt.Printf("  %-4d  %-6d  %-8d  %-10s  %s\n",
			i+1, entry.Level, entry.Score, entry.Outcome,
			entry.CreatedAt.Format("2006-01-02 15:04"),
		)
	}

	fmt.Println()
	if best, err := store.HighScore(); err == nil {
		fmt.Printf("Best: %d\n", best)
	}

	stats, err := store.StatsByLevel()
	if err != nil || len(stats) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Per level:")
	for _, st := range stats {
		fmt.Printf("  Level %d: %d plays, %d wins, best %d\n",
			st.Level, st.Plays, st.Wins, st.BestScore)
	}
}
