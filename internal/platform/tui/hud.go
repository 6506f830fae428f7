package tui

import (
	"github.com/vovakirdan/cansat-drop/internal/cansat"
	"github.com/vovakirdan/cansat-drop/internal/config"
)

// HUD is the score display of the terminal front-end.
// The session pushes scores into it; the renderer reads them back.
type HUD struct {
	Score   int
	Final   int
	Message string
	best    map[config.Difficulty]int
}

var _ cansat.Display = (*HUD)(nil)

// NewHUD creates an empty HUD.
func NewHUD() *HUD {
	return &HUD{best: make(map[config.Difficulty]int)}
}

// ShowScore updates the running score.
func (h *HUD) ShowScore(score int) {
	h.Score = score
}

// ShowGameOver records the final score and headline of a finished run.
func (h *HUD) ShowGameOver(finalScore int, message string) {
	h.Final = finalScore
	h.Message = message
}

// RecordBest raises the best score of d to score if it is higher.
func (h *HUD) RecordBest(d config.Difficulty, score int) {
	if score > h.best[d] {
		h.best[d] = score
	}
}

// Best returns the best score seen for d.
func (h *HUD) Best(d config.Difficulty) int {
	return h.best[d]
}
