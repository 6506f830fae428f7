package cansat

import (
	"github.com/vovakirdan/cansat-drop/internal/core"
)

// StepResult is returned by Step after each simulation tick.
type StepResult struct {
	State  core.GameState
	Status Status
	Reason EndReason
	Tick   int
}

// Step advances a running session by one fixed tick.
// Outside Running it changes nothing and reports the current state.
//
// Order within a tick: steer and fall, raise and recycle obstacles, test
// collisions (stopping at the first hit), test the floor, then score.
func (s *Session) Step(in core.InputState) StepResult {
	if s.status != StatusRunning {
		return s.result()
	}
	in = in.Snapshot()
	s.tick++

	w, h := s.scene.PlayAreaSize()
	pb := s.scene.BoundsOf(PlayerID)
	maxX := w - pb.W
	p := &s.player

	// Both directions are evaluated independently, each against the
	// position at the start of the tick.
	left := in.Pressed(core.KeyLeft) && p.X > 0
	right := in.Pressed(core.KeyRight) && p.X < maxX

	p.Y += p.Speed
	if left {
		p.X -= p.Speed
	}
	if right {
		p.X += p.Speed
	}
	p.X = core.ClampF(p.X, 0, maxX)
	s.scene.Place(PlayerID, p.X, p.Y)

	s.spawner.Advance(s.obstacles, p.Speed)

	playerRect := s.scene.BoundsOf(PlayerID)
	for _, o := range s.obstacles {
		if core.Overlaps(playerRect, s.scene.BoundsOf(o.ID)) {
			s.end(EndCollision)
			return s.result()
		}
	}

	if p.Y >= h-pb.H {
		s.end(EndFloor)
		return s.result()
	}

	p.Score++
	s.display.ShowScore(p.Score)
	return s.result()
}

func (s *Session) result() StepResult {
	return StepResult{
		State:  s.State(),
		Status: s.status,
		Reason: s.reason,
		Tick:   s.tick,
	}
}
