// cansat is a terminal arcade game: steer a falling cansat around rising
// clouds, birds and UFOs for as long as you can.
//
// Usage:
//
//	cansat play           - Play in this terminal
//	cansat serve          - Start SSH server for remote play
//	cansat sim            - Run a headless game and print the result
//	cansat difficulties   - List difficulty levels
//	cansat config         - Print the default or resolved config
//
// Global flags:
//
//	--config <path>     - Custom config YAML
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--log-level <lvl>   - debug, info, warn, error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/cansat-drop/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cansat",
	Short: "Cansat - steer a falling can through the sky",
	Long: `Cansat is a terminal arcade game. A cansat drops from the top of the
sky; steer it left and right around rising obstacles. Every tick you
survive scores a point. Hitting an obstacle or reaching the ground ends
the run.

Available commands:
  play          - Play in this terminal
  serve         - Start SSH server for remote play
  sim           - Run a headless game
  difficulties  - List difficulty levels
  config        - Print the default or resolved config

Examples:
  cansat play
  cansat play --difficulty pro
  cansat serve --ssh :2222
  cansat sim --steer zigzag --seed 42
  cansat config --resolved`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(difficultiesCmd)
}

// loadConfig loads the game config and applies a --difficulty override.
func loadConfig(difficulty string) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if difficulty != "" {
		d, err := config.ParseDifficulty(difficulty)
		if err != nil {
			return cfg, err
		}
		cfg.Difficulty.Default = d
	}
	return cfg, nil
}

// newLogger builds a logger writing to --log-file if set, otherwise to
// fallback. The returned closer must be called on exit.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	w := fallback
	var closer io.Closer = nopCloser{}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
