// Package cansat implements the falling-cansat game: a fixed pool of rising
// obstacles, a steerable cansat that drifts down at a constant speed, and the
// Idle -> Running -> GameOver state machine around the per-tick step.
//
// The package draws nothing. Positions go to a Scene, scores to a Display.
package cansat

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/cansat-drop/internal/config"
	"github.com/vovakirdan/cansat-drop/internal/core"
)

// Status is the state of a Session.
type Status int

const (
	StatusIdle Status = iota
	StatusRunning
	StatusGameOver
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "Idle"
	case StatusRunning:
		return "Running"
	case StatusGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// EndReason tells why a run ended.
type EndReason int

const (
	EndNone      EndReason = iota
	EndCollision           // The cansat hit an obstacle
	EndFloor               // The cansat fell past the bottom of the play area
)

// String returns the name stored in run history.
func (r EndReason) String() string {
	switch r {
	case EndCollision:
		return "collision"
	case EndFloor:
		return "floor"
	default:
		return "none"
	}
}

// Player is the cansat's state for the current run.
type Player struct {
	X, Y   float64
	Speed  float64 // Units per tick, fixed for the run
	Score  int
	Active bool
}

// RunSummary describes a finished run.
type RunSummary struct {
	Difficulty config.Difficulty
	Score      int
	Ticks      int
	Reason     EndReason
}

// Session owns one player's game: the player, the obstacle pool and the
// state machine. It is not safe for concurrent use; the front-end drives it
// from a single goroutine.
type Session struct {
	cfg     config.Config
	scene   Scene
	display Display
	spawner *Spawner
	loop    Loop

	status     Status
	selected   config.Difficulty // Applies at the next start
	difficulty config.Difficulty // Of the current or last run
	player     Player
	obstacles  []Obstacle
	tick       int
	reason     EndReason

	onRunEnd []func(RunSummary)
}

// NewSession creates an idle session.
// A nil scene gets a Layout built from cfg; a nil display discards output.
func NewSession(cfg config.Config, scene Scene, display Display, seed int64) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if scene == nil {
		scene = NewLayout(cfg)
	}
	if display == nil {
		display = NopDisplay{}
	}

	s := &Session{
		cfg:      cfg,
		scene:    scene,
		display:  display,
		spawner:  NewSpawner(scene, cfg.Obstacles, rand.New(rand.NewSource(seed))),
		status:   StatusIdle,
		selected: cfg.Difficulty.Default,
	}
	s.difficulty = s.selected
	return s, nil
}

// SelectDifficulty sets the level for the next run.
// It may be called at any time; a run in progress keeps its speed.
func (s *Session) SelectDifficulty(d config.Difficulty) error {
	if _, err := s.cfg.Speed(d); err != nil {
		return fmt.Errorf("cansat: select difficulty: %w", err)
	}
	s.selected = d
	return nil
}

// Selected returns the level the next run will use.
func (s *Session) Selected() config.Difficulty {
	return s.selected
}

// Difficulty returns the level of the current or last run.
func (s *Session) Difficulty() config.Difficulty {
	return s.difficulty
}

// OnRunEnd registers a callback fired once per run when it ends.
func (s *Session) OnRunEnd(fn func(RunSummary)) {
	s.onRunEnd = append(s.onRunEnd, fn)
}

// Trigger handles the start/restart input.
// From Idle or GameOver it starts a fresh run and returns true; while
// Running it does nothing and returns false.
func (s *Session) Trigger() bool {
	if s.status == StatusRunning {
		return false
	}
	s.start()
	return true
}

// start resets everything for a new run and arms the loop.
func (s *Session) start() {
	// selected was checked by NewSession (via Validate) or SelectDifficulty
	speed := s.cfg.Difficulty.Speeds[s.selected]

	s.scene.Clear()
	s.scene.Spawn(PlayerID, KindCansat)
	w, _ := s.scene.PlayAreaSize()
	pb := s.scene.BoundsOf(PlayerID)

	s.difficulty = s.selected
	s.player = Player{
		X:      (w - pb.W) / 2,
		Y:      0,
		Speed:  speed,
		Score:  0,
		Active: true,
	}
	s.scene.Place(PlayerID, s.player.X, s.player.Y)

	s.obstacles = s.spawner.SpawnInitial(s.cfg.Obstacles.Count)
	s.tick = 0
	s.reason = EndNone
	s.status = StatusRunning
	s.loop.Start()
	s.display.ShowScore(0)
}

// end moves a running session to GameOver.
func (s *Session) end(reason EndReason) {
	s.player.Active = false
	s.status = StatusGameOver
	s.reason = reason
	s.loop.Stop()
	s.display.ShowGameOver(s.player.Score, GameOverMessage)

	summary := RunSummary{
		Difficulty: s.difficulty,
		Score:      s.player.Score,
		Ticks:      s.tick,
		Reason:     reason,
	}
	for _, fn := range s.onRunEnd {
		fn(summary)
	}
}

// Status returns the current state.
func (s *Session) Status() Status {
	return s.status
}

// Score returns the score of the current or last run.
func (s *Session) Score() int {
	return s.player.Score
}

// Player returns a copy of the player state.
func (s *Session) Player() Player {
	return s.player
}

// Obstacles returns a copy of the obstacle pool.
func (s *Session) Obstacles() []Obstacle {
	result := make([]Obstacle, len(s.obstacles))
	copy(result, s.obstacles)
	return result
}

// Reason returns why the last run ended, or EndNone.
func (s *Session) Reason() EndReason {
	return s.reason
}

// Tick returns the number of steps taken in the current or last run.
func (s *Session) Tick() int {
	return s.tick
}

// Scene returns the scene the session draws into.
func (s *Session) Scene() Scene {
	return s.scene
}

// Token returns the loop token of the current run.
// Front-ends attach it to scheduled ticks.
func (s *Session) Token() Token {
	return s.loop.Token()
}

// Accept reports whether a tick scheduled with tok should run.
func (s *Session) Accept(tok Token) bool {
	return s.loop.Accept(tok)
}

// State returns the summary the front-end needs.
func (s *Session) State() core.GameState {
	return core.GameState{
		Score:    s.player.Score,
		Running:  s.status == StatusRunning,
		GameOver: s.status == StatusGameOver,
	}
}
