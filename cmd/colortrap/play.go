package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ntimofeev/colortrap/internal/config"
	"github.com/ntimofeev/colortrap/internal/game"
	"github.com/ntimofeev/colortrap/internal/platform/tui"
	"github.com/ntimofeev/colortrap/internal/speech"
	"github.com/ntimofeev/colortrap/internal/storage"
)

var (
	flagConfig string
	flagMute   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game at the homepage with the level select menu.

Controls:
  Up/Down/Enter - Navigate the menu
  1-4           - Press a colored button
  R             - Retry level after a miss
  Esc/B         - Back to menu
  Q/Ctrl+C      - Quit

Clearing a level unlocks the next one for the rest of the session.

Examples:
  colortrap play
  colortrap play --mute
  colortrap play --seed 42
  colortrap play --config ./my-colortrap.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable tone announcements")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size early, Bubble Tea corrects it on the first resize
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "colortrap"})

	var announcer game.Announcer
	var tones *speech.ToneAnnouncer
	if flagMute || !cfg.Audio.Enabled {
		announcer = speech.NewLogAnnouncer(logger)
	} else {
		tones = speech.NewToneAnnouncer(logger)
		announcer = tones
	}

	opts := []game.Option{
		game.WithAnnouncer(announcer),
		game.WithAnnounceDelay(time.Duration(cfg.Game.AnnounceDelayMs) * time.Millisecond),
	}
	if flagSeed != 0 {
		opts = append(opts, game.WithRand(rand.New(rand.NewSource(flagSeed))))
	}

	session := game.NewSession(opts...)

	runErr := tui.Run(session, store, cfg, width, height)

	if tones != nil {
		tones.Close()
	}
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
