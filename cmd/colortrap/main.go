// colortrap is a terminal reaction-inhibition game: a voice names a
// color, and you must press any button EXCEPT the one it names.
//
// Usage:
//
//	colortrap play            - Play the game
//	colortrap levels          - List the level catalog
//	colortrap scores          - Show run history and best scores
//	colortrap serve           - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible sequences
//	--db <path>     - Set database path (default: ~/.colortrap/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "colortrap",
	Short: "Color Trap - press everything except the named color",
	Long: `Color Trap is a terminal reaction game. Each round a color is
announced and you must press any button EXCEPT the one showing that
color. Ten rounds clear a level; six levels clear the game.

Available commands:
  play     - Play the game
  levels   - Show the level catalog
  scores   - View run history and best scores
  serve    - Start SSH server for remote play

Examples:
  colortrap play
  colortrap play --level 3
  colortrap scores --top 20
  colortrap serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.colortrap/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
