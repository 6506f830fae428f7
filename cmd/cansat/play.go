package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/cansat-drop/internal/core"
	"github.com/vovakirdan/cansat-drop/internal/platform/tui"
	"github.com/vovakirdan/cansat-drop/internal/storage"
)

var flagPlayDifficulty string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start the game in this terminal.

Controls:
  Left/A/H    - Steer left
  Right/D/L   - Steer right
  Any key     - Start / restart a run
  Esc         - Difficulty menu (between runs)
  Tab         - Run history (between runs)
  Q/Ctrl+C    - Quit

Difficulty options:
  beginner  - speed 3
  advanced  - speed 5
  pro       - speed 8

Examples:
  cansat play
  cansat play --difficulty beginner
  cansat play --config ./my-cansat.yaml --seed 7`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayDifficulty, "difficulty", "", "Starting difficulty: beginner, advanced, pro")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig(flagPlayDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Logging to stderr would draw over the alternate screen.
	logger, closer, err := newLogger("cansat", io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	rt.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	store, err := storage.OpenMemory()
	if err != nil {
		logger.Warn("could not open run history", "error", err)
		// Continue without history - game still works
		store = nil
	}

	runErr := tui.Run(tui.Options{
		Config:  cfg,
		Runtime: rt,
		Store:   store,
		Logger:  logger,
		Player:  tui.LocalPlayer,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		closer.Close()
		os.Exit(1)
	}
}
