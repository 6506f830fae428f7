package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cansat-drop/internal/cansat"
)

var (
	flagSimDifficulty string
	flagSimSteps      int
	flagSimSteer      string
	flagSimRealtime   bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless game",
	Long: `Play one run without a terminal UI and print the result.

The steering strategy replaces the keyboard:
  none    - never steer
  left    - hold left
  right   - hold right
  zigzag  - alternate every 15 ticks
  random  - random presses (seeded by --seed)
  dodge   - steer away from the nearest obstacle below

Runs as fast as possible unless --realtime is given, in which case
--fps paces the ticks.

Examples:
  cansat sim
  cansat sim --difficulty pro --steer zigzag --seed 42
  cansat sim --steps 100 --realtime`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagSimDifficulty, "difficulty", "", "Difficulty: beginner, advanced, pro")
	simCmd.Flags().IntVar(&flagSimSteps, "steps", 0, "Stop after this many ticks (0 = until game over)")
	simCmd.Flags().StringVar(&flagSimSteer, "steer", "none", "Steering: none, left, right, zigzag, random, dodge")
	simCmd.Flags().BoolVar(&flagSimRealtime, "realtime", false, "Pace ticks at --fps")
}

func runSim(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig(flagSimDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closer, err := newLogger("cansat-sim", os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	steer, err := cansat.ParseSteer(flagSimSteer, seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	session, err := cansat.NewSession(cfg, nil, nil, seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	session.OnRunEnd(func(sum cansat.RunSummary) {
		logger.Debug("run ended", "difficulty", sum.Difficulty, "reason", sum.Reason)
	})

	runner := cansat.Runner{MaxTicks: flagSimSteps}
	if flagSimRealtime {
		runner.TickRate = flagFPS
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("simulation started", "difficulty", cfg.Difficulty.Default, "steer", flagSimSteer, "seed", seed)
	result, err := runner.Run(ctx, session, steer)
	if err != nil {
		logger.Warn("simulation interrupted", "error", err)
	}

	logger.Info("simulation finished",
		"status", result.Status,
		"reason", result.Reason,
		"score", result.State.Score,
		"ticks", result.Tick,
	)
	p := session.Player()
	fmt.Printf("difficulty=%s steer=%s seed=%d status=%s reason=%s score=%d ticks=%d x=%.0f y=%.0f\n",
		session.Difficulty(), flagSimSteer, seed, result.Status, session.Reason(), p.Score, result.Tick, p.X, p.Y)
}
