package config

import (
	"errors"
	"fmt"
	"strings"
)

// Difficulty is a named speed level selected before a run.
type Difficulty string

const (
	DifficultyBeginner Difficulty = "beginner"
	DifficultyAdvanced Difficulty = "advanced"
	DifficultyPro      Difficulty = "pro"
)

// Difficulties lists the levels from slowest to fastest.
var Difficulties = []Difficulty{DifficultyBeginner, DifficultyAdvanced, DifficultyPro}

// ErrUnknownDifficulty is returned for names outside Difficulties.
var ErrUnknownDifficulty = errors.New("unknown difficulty")

// Valid reports whether d is one of the known levels.
func (d Difficulty) Valid() bool {
	for _, known := range Difficulties {
		if d == known {
			return true
		}
	}
	return false
}

// Title returns the display name used by the menus.
func (d Difficulty) Title() string {
	switch d {
	case DifficultyBeginner:
		return "Beginner"
	case DifficultyAdvanced:
		return "Advanced"
	case DifficultyPro:
		return "Pro"
	default:
		return string(d)
	}
}

// ParseDifficulty converts a CLI or config value to a Difficulty.
// Matching is case-insensitive; an empty string is an error.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	if !d.Valid() {
		return "", fmt.Errorf("%w: %q (want one of beginner, advanced, pro)", ErrUnknownDifficulty, s)
	}
	return d, nil
}

// Next returns the level after d, wrapping around. Used by menus.
func (d Difficulty) Next() Difficulty {
	for i, known := range Difficulties {
		if d == known {
			return Difficulties[(i+1)%len(Difficulties)]
		}
	}
	return Difficulties[0]
}

// Prev returns the level before d, wrapping around.
func (d Difficulty) Prev() Difficulty {
	for i, known := range Difficulties {
		if d == known {
			return Difficulties[(i+len(Difficulties)-1)%len(Difficulties)]
		}
	}
	return Difficulties[0]
}
