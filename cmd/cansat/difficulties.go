package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cansat-drop/internal/config"
)

var difficultiesCmd = &cobra.Command{
	Use:   "difficulties",
	Short: "List difficulty levels",
	Long:  `Shows the difficulty levels and their fall speeds from the active config.`,
	Args:  cobra.NoArgs,
	Run:   runDifficulties,
}

func runDifficulties(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Difficulty levels:")
	fmt.Println()
	fmt.Printf("  %-10s  %s\n", "Level", "Speed")
	fmt.Printf("  %-10s  %s\n", "-----", "-----")

	for _, d := range config.Difficulties {
		speed, _ := cfg.Speed(d)
		marker := ""
		if d == cfg.Difficulty.Default {
			marker = "  (default)"
		}
		fmt.Printf("  %-10s  %g%s\n", d, speed, marker)
	}

	fmt.Println()
	fmt.Println("Run 'cansat play --difficulty <level>' to pick one.")
}
