// Package config provides YAML-based game configuration loading and
// the difficulty table for the cansat game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config contains all configuration for the cansat game.
// Lengths are in play-area units; speeds are units per tick.
type Config struct {
	PlayArea   PlayArea         `yaml:"play_area"`
	Player     Size             `yaml:"player"`
	Obstacles  ObstaclesConfig  `yaml:"obstacles"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Input      InputConfig      `yaml:"input"`
}

// PlayArea is the logical size of the region the cansat falls through.
type PlayArea struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Size is the width and height of an entity.
type Size struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ObstaclesConfig defines the obstacle pool.
type ObstaclesConfig struct {
	Count         int             `yaml:"count"`
	ExitThreshold float64         `yaml:"exit_threshold"` // Recycle once Y drops below this
	RecycleOffset float64         `yaml:"recycle_offset"` // Recycled Y = play height + offset
	SpawnDepth    float64         `yaml:"spawn_depth"`    // Initial Y = play height + rand[0, depth)
	Sizes         map[string]Size `yaml:"sizes"`          // Keyed by obstacle kind
}

// DifficultyConfig holds the selectable levels and their fall speeds.
type DifficultyConfig struct {
	Default Difficulty             `yaml:"default"`
	Speeds  map[Difficulty]float64 `yaml:"speeds"`
}

// InputConfig tunes how terminal key presses become held keys.
type InputConfig struct {
	HoldMS int `yaml:"hold_ms"` // A key counts as held this long after its last press
}

// Hold returns HoldMS as a duration.
func (c InputConfig) Hold() time.Duration {
	return time.Duration(c.HoldMS) * time.Millisecond
}

// ObstacleSize returns the configured size for an obstacle kind.
func (c Config) ObstacleSize(kind string) (Size, bool) {
	s, ok := c.Obstacles.Sizes[kind]
	return s, ok
}

// Speed returns the fall speed for a difficulty level.
func (c Config) Speed(d Difficulty) (float64, error) {
	if !d.Valid() {
		return 0, fmt.Errorf("%w: %q", ErrUnknownDifficulty, d)
	}
	speed, ok := c.Difficulty.Speeds[d]
	if !ok {
		return 0, fmt.Errorf("config: no speed configured for %q", d)
	}
	return speed, nil
}

// Validate checks that the configuration describes a playable game.
func (c Config) Validate() error {
	var errs []error

	if c.PlayArea.Width <= 0 || c.PlayArea.Height <= 0 {
		errs = append(errs, fmt.Errorf("play_area must be positive, got %vx%v", c.PlayArea.Width, c.PlayArea.Height))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, fmt.Errorf("player size must be positive, got %vx%v", c.Player.Width, c.Player.Height))
	}
	if c.Player.Width > c.PlayArea.Width {
		errs = append(errs, fmt.Errorf("player width %v exceeds play_area width %v", c.Player.Width, c.PlayArea.Width))
	}
	if c.Obstacles.Count < 0 {
		errs = append(errs, fmt.Errorf("obstacles.count must not be negative, got %d", c.Obstacles.Count))
	}
	if c.Obstacles.SpawnDepth < 0 {
		errs = append(errs, fmt.Errorf("obstacles.spawn_depth must not be negative, got %v", c.Obstacles.SpawnDepth))
	}
	for _, kind := range ObstacleKinds {
		s, ok := c.Obstacles.Sizes[kind]
		if !ok {
			errs = append(errs, fmt.Errorf("obstacles.sizes.%s is missing", kind))
			continue
		}
		if s.Width <= 0 || s.Height <= 0 {
			errs = append(errs, fmt.Errorf("obstacles.sizes.%s must be positive, got %vx%v", kind, s.Width, s.Height))
		}
	}
	for _, d := range Difficulties {
		speed, ok := c.Difficulty.Speeds[d]
		if !ok {
			errs = append(errs, fmt.Errorf("difficulty.speeds.%s is missing", d))
			continue
		}
		if speed <= 0 {
			errs = append(errs, fmt.Errorf("difficulty.speeds.%s must be positive, got %v", d, speed))
		}
	}
	if !c.Difficulty.Default.Valid() {
		errs = append(errs, fmt.Errorf("difficulty.default: %w: %q", ErrUnknownDifficulty, c.Difficulty.Default))
	}
	if c.Input.HoldMS < 0 {
		errs = append(errs, fmt.Errorf("input.hold_ms must not be negative, got %d", c.Input.HoldMS))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

// ObstacleKinds lists the obstacle kinds in their canonical order.
var ObstacleKinds = []string{"cloud", "bird", "ufo"}
