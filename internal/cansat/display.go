package cansat

// Display is the score display collaborator.
// It receives the score once per running step and the final score when a
// run ends.
type Display interface {
	ShowScore(score int)
	ShowGameOver(finalScore int, message string)
}

// NopDisplay discards everything. Used by headless runs.
type NopDisplay struct{}

// ShowScore does nothing.
func (NopDisplay) ShowScore(int) {}

// ShowGameOver does nothing.
func (NopDisplay) ShowGameOver(int, string) {}

// GameOverMessage is the headline shown when a run ends.
const GameOverMessage = "Game Over"
