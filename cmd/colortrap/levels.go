package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ntimofeev/colortrap/internal/game"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show the level catalog",
	Long:  `Shows the time limit and button count for every level.`,
	Run:   runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	fmt.Println("Level catalog:")
	fmt.Println()
	fmt.Printf("  %-6s  %-6s  %-8s  %s\n", "Level", "Time", "Buttons", "Rounds")
	fmt.Printf("  %-6s  %-6s  %-8s  %s\n", "-----", "----", "-------", "------")

	for _, cfg := range game.Levels() {
		fmt.Printf("  %-6d  %-6s  %-8d  %d\n",
			cfg.ID,
			fmt.Sprintf("%ds", cfg.TimeLimit),
			cfg.ColorArity,
			game.RoundsPerLevel,
		)
	}

	fmt.Println()
	fmt.Println("Clear a level to unlock the next. Run 'colortrap play' to start.")
}
