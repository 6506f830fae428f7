package cansat

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/cansat-drop/internal/core"
)

// SteerFunc produces the input for a tick of a headless run.
type SteerFunc func(tick int, s *Session) core.InputState

// Runner drives a Session without a terminal.
type Runner struct {
	TickRate int // Ticks per second; 0 runs as fast as possible
	MaxTicks int // Stop after this many ticks; 0 means until game over
}

// Run starts a run if the session is not already running, then steps it
// until game over, MaxTicks, or ctx is cancelled.
// Cancellation returns ctx.Err() together with the last result.
func (r Runner) Run(ctx context.Context, s *Session, steer SteerFunc) (StepResult, error) {
	if steer == nil {
		steer = SteerNone
	}
	s.Trigger()
	tok := s.Token()
	result := s.result()

	var tick <-chan time.Time
	if r.TickRate > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(r.TickRate))
		defer ticker.Stop()
		tick = ticker.C
	}

	for s.Accept(tok) {
		if r.MaxTicks > 0 && s.Tick() >= r.MaxTicks {
			break
		}
		if tick != nil {
			select {
			case <-ctx.Done():
				return result, ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			return result, err
		}
		result = s.Step(steer(s.Tick(), s))
	}
	return result, nil
}

// SteerNone holds no keys.
func SteerNone(int, *Session) core.InputState {
	return core.NewInputState()
}

// SteerHold returns a SteerFunc that holds k on every tick.
func SteerHold(k core.Key) SteerFunc {
	return func(int, *Session) core.InputState {
		in := core.NewInputState()
		in.Press(k)
		return in
	}
}

// SteerZigzag alternates between left and right every period ticks.
func SteerZigzag(period int) SteerFunc {
	if period <= 0 {
		period = 1
	}
	return func(tick int, _ *Session) core.InputState {
		in := core.NewInputState()
		if (tick/period)%2 == 0 {
			in.Press(core.KeyLeft)
		} else {
			in.Press(core.KeyRight)
		}
		return in
	}
}

// SteerRandom presses each key independently with probability 1/3 per tick.
func SteerRandom(seed int64) SteerFunc {
	rng := rand.New(rand.NewSource(seed))
	return func(int, *Session) core.InputState {
		in := core.NewInputState()
		if rng.Intn(3) == 0 {
			in.Press(core.KeyLeft)
		}
		if rng.Intn(3) == 0 {
			in.Press(core.KeyRight)
		}
		return in
	}
}

// SteerDodge steers away from the nearest obstacle whose column overlaps the
// cansat and whose top is at most lookahead units below it. The side with
// more room is chosen when the obstacle is centered on the cansat.
func SteerDodge(lookahead float64) SteerFunc {
	return func(_ int, s *Session) core.InputState {
		in := core.NewInputState()
		p := s.Player()
		scene := s.Scene()
		me := scene.BoundsOf(PlayerID)
		w, _ := scene.PlayAreaSize()

		var threat *core.Rect
		for _, o := range s.Obstacles() {
			b := scene.BoundsOf(o.ID)
			if b.Right() < me.Left() || b.Left() > me.Right() {
				continue
			}
			gap := b.Top() - me.Bottom()
			if gap < 0 && b.Bottom() < me.Top() {
				continue
			}
			if gap > lookahead {
				continue
			}
			if threat == nil || b.Top() < threat.Top() {
				threat = &b
			}
		}
		if threat == nil {
			return in
		}

		mid := p.X + me.W/2
		obsMid := threat.X + threat.W/2
		switch {
		case obsMid > mid:
			in.Press(core.KeyLeft)
		case obsMid < mid:
			in.Press(core.KeyRight)
		case threat.Left() > w-threat.Right():
			in.Press(core.KeyLeft)
		default:
			in.Press(core.KeyRight)
		}
		return in
	}
}

// ParseSteer maps a strategy name to a SteerFunc.
func ParseSteer(name string, seed int64) (SteerFunc, error) {
	switch name {
	case "", "none":
		return SteerNone, nil
	case "left":
		return SteerHold(core.KeyLeft), nil
	case "right":
		return SteerHold(core.KeyRight), nil
	case "zigzag":
		return SteerZigzag(15), nil
	case "random":
		return SteerRandom(seed), nil
	case "dodge":
		return SteerDodge(120), nil
	default:
		return nil, fmt.Errorf("cansat: unknown steering strategy %q", name)
	}
}
