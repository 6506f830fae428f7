package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The front-end fills it from the terminal and CLI flags.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the summary of a session the front-end needs each tick.
type GameState struct {
	Score    int  // Current score
	Running  bool // Whether a run is in progress
	GameOver bool // Whether the last run has ended
}
