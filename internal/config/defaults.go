package config

import (
	_ "embed"
)

//go:embed defaults/cansat.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
// It matches defaults/cansat.yaml and is the last fallback of Load.
func Default() Config {
	return Config{
		PlayArea: PlayArea{
			Width:  400,
			Height: 600,
		},
		Player: Size{
			Width:  40,
			Height: 40,
		},
		Obstacles: ObstaclesConfig{
			Count:         3,
			ExitThreshold: -50,
			RecycleOffset: 50,
			SpawnDepth:    500,
			Sizes: map[string]Size{
				"cloud": {Width: 50, Height: 30},
				"bird":  {Width: 40, Height: 30},
				"ufo":   {Width: 50, Height: 30},
			},
		},
		Difficulty: DifficultyConfig{
			Default: DifficultyAdvanced,
			Speeds: map[Difficulty]float64{
				DifficultyBeginner: 3,
				DifficultyAdvanced: 5,
				DifficultyPro:      8,
			},
		},
		Input: InputConfig{
			HoldMS: 150,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
