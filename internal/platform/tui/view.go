package tui

import (
	"fmt"
	"math"

	"github.com/vovakirdan/cansat-drop/internal/cansat"
	"github.com/vovakirdan/cansat-drop/internal/config"
	"github.com/vovakirdan/cansat-drop/internal/core"
)

// Minimum play area in cells.
const (
	minViewCols = 16
	minViewRows = 8
)

// glyph is how an entity kind fills its cells.
type glyph struct {
	fill  rune
	color core.Color
}

var kindGlyphs = map[cansat.Kind]glyph{
	cansat.KindCansat: {'█', core.ColorOrange},
	cansat.KindCloud:  {'░', core.ColorWhite},
	cansat.KindBird:   {'v', core.ColorYellow},
	cansat.KindUFO:    {'▀', core.ColorMagenta},
}

// viewport maps play-area units onto a block of screen cells.
type viewport struct {
	x, y       int // Top-left inner cell
	cols, rows int
	sx, sy     float64 // Units per cell
}

// newViewport fits a play area of areaW x areaH units below the HUD row.
// Cells are about twice as tall as wide, which the column count accounts for.
// Returns false if the screen is too small.
func newViewport(screenW, screenH int, areaW, areaH float64) (viewport, bool) {
	rows := screenH - 3 // HUD row and the two border rows
	if rows < minViewRows || areaW <= 0 || areaH <= 0 {
		return viewport{}, false
	}
	cols := int(float64(rows) * areaW / areaH * 2)
	cols = core.Min(cols, screenW-2)
	if cols < minViewCols {
		return viewport{}, false
	}
	return viewport{
		x:    (screenW-cols)/2 + 1,
		y:    2,
		cols: cols,
		rows: rows,
		sx:   areaW / float64(cols),
		sy:   areaH / float64(rows),
	}, true
}

// cells converts a rect to an inclusive cell range relative to the viewport.
// Returns false if the rect is entirely outside.
func (v viewport) cells(r core.Rect) (x0, y0, x1, y1 int, ok bool) {
	x0 = int(math.Floor(r.X / v.sx))
	y0 = int(math.Floor(r.Y / v.sy))
	x1 = core.Max(x0, int(math.Ceil((r.X+r.W)/v.sx))-1)
	y1 = core.Max(y0, int(math.Ceil((r.Y+r.H)/v.sy))-1)
	if x1 < 0 || y1 < 0 || x0 >= v.cols || y0 >= v.rows {
		return 0, 0, 0, 0, false
	}
	x0, y0 = core.Max(x0, 0), core.Max(y0, 0)
	x1, y1 = core.Min(x1, v.cols-1), core.Min(y1, v.rows-1)
	return x0, y0, x1, y1, true
}

// drawGame renders the HUD, the play area and any overlay onto scr.
// intent is the held steering direction shown next to the score.
func drawGame(scr *core.Screen, layout *cansat.Layout, s *cansat.Session, hud *HUD, intent int) {
	scr.Clear()

	w, h := layout.PlayAreaSize()
	v, ok := newViewport(scr.Width(), scr.Height(), w, h)
	if !ok {
		scr.DrawTextCentered(scr.Height()/2, "Terminal too small", core.ColorRed)
		return
	}

	drawHUD(scr, s, hud, intent)
	scr.DrawBox(v.x-1, v.y-1, v.cols+2, v.rows+2, core.ColorGray)

	if s.Status() != cansat.StatusIdle {
		for _, e := range layout.Entities() {
			drawEntity(scr, v, e)
		}
	}

	switch s.Status() {
	case cansat.StatusIdle:
		drawStartOverlay(scr, v, s.Selected())
	case cansat.StatusGameOver:
		drawGameOverOverlay(scr, v, s, hud)
	}
}

func drawHUD(scr *core.Screen, s *cansat.Session, hud *HUD, intent int) {
	score := hud.Score
	if s.Status() == cansat.StatusGameOver {
		score = hud.Final
	}
	left := fmt.Sprintf("Score: %d", score)
	scr.DrawTextColored(1, 0, left, core.ColorWhite)

	if s.Status() == cansat.StatusRunning && intent != 0 {
		arrow := "◀"
		if intent > 0 {
			arrow = "▶"
		}
		scr.DrawTextColored(len(left)+2, 0, arrow, core.ColorCyan)
	}

	d := s.Difficulty()
	if s.Status() == cansat.StatusIdle {
		d = s.Selected()
	}
	right := fmt.Sprintf("%s  Best: %d", d.Title(), hud.Best(d))
	scr.DrawTextColored(scr.Width()-len([]rune(right))-1, 0, right, core.ColorGray)
}

func drawEntity(scr *core.Screen, v viewport, e cansat.Entity) {
	x0, y0, x1, y1, ok := v.cells(e.Rect)
	if !ok {
		return
	}
	g := kindGlyphs[e.Kind]

	if e.Kind != cansat.KindCansat {
		scr.FillRect(v.x+x0, v.y+y0, x1-x0+1, y1-y0+1, g.fill, g.color)
		return
	}

	// Umbrella on the top row, the can below it.
	for x := x0; x <= x1; x++ {
		scr.SetColored(v.x+x, v.y+y0, '─', core.ColorCyan)
	}
	scr.SetColored(v.x+(x0+x1)/2, v.y+y0, '☂', core.ColorCyan)
	if y1 > y0 {
		scr.FillRect(v.x+x0, v.y+y0+1, x1-x0+1, y1-y0, g.fill, g.color)
	}
}

// drawCentered writes text centered within the viewport on row y.
func drawCentered(scr *core.Screen, v viewport, y int, text string, c core.Color) {
	x := v.x + (v.cols-len([]rune(text)))/2
	scr.DrawTextColored(x, v.y+y, text, c)
}

func drawStartOverlay(scr *core.Screen, v viewport, selected config.Difficulty) {
	mid := v.rows / 2
	drawCentered(scr, v, mid-3, "C A N S A T", core.ColorCyan)
	drawDifficultyButtons(scr, v, mid-1, selected)
	drawCentered(scr, v, mid+1, "Press Any Key to Start", core.ColorWhite)
	drawCentered(scr, v, mid+2, "esc: difficulty", core.ColorGray)
}

// drawDifficultyButtons draws one button per level with the selected one
// highlighted.
func drawDifficultyButtons(scr *core.Screen, v viewport, y int, selected config.Difficulty) {
	labels := make([]string, len(config.Difficulties))
	total := 0
	for i, d := range config.Difficulties {
		if d == selected {
			labels[i] = "[" + d.Title() + "]"
		} else {
			labels[i] = " " + d.Title() + " "
		}
		total += len([]rune(labels[i]))
	}
	total += len(labels) - 1

	x := v.x + (v.cols-total)/2
	for i, d := range config.Difficulties {
		c := core.ColorGray
		if d == selected {
			c = core.ColorYellow
		}
		scr.DrawTextColored(x, v.y+y, labels[i], c)
		x += len([]rune(labels[i])) + 1
	}
}

func drawGameOverOverlay(scr *core.Screen, v viewport, s *cansat.Session, hud *HUD) {
	mid := v.rows / 2
	drawCentered(scr, v, mid-2, hud.Message, core.ColorRed)
	drawCentered(scr, v, mid-1, fmt.Sprintf("Your final score is %d", hud.Final), core.ColorWhite)
	drawCentered(scr, v, mid, "Press Any Key to Restart.", core.ColorWhite)
	drawCentered(scr, v, mid+2, fmt.Sprintf("Best (%s): %d", s.Difficulty().Title(), hud.Best(s.Difficulty())), core.ColorYellow)
}
