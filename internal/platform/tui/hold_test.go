package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/cansat-drop/internal/core"
)

func TestHoldTrackerExpiry(t *testing.T) {
	h := NewHoldTracker(150 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	h.Press(core.KeyLeft, t0)
	if !h.State().Pressed(core.KeyLeft) {
		t.Fatal("Left should be held after Press")
	}

	h.Expire(t0.Add(100 * time.Millisecond))
	if !h.State().Pressed(core.KeyLeft) {
		t.Error("Left should still be held before the deadline")
	}

	h.Expire(t0.Add(150 * time.Millisecond))
	if h.State().Pressed(core.KeyLeft) {
		t.Error("Left should be released at the deadline")
	}
}

func TestHoldTrackerRepeatExtends(t *testing.T) {
	h := NewHoldTracker(150 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	h.Press(core.KeyRight, t0)
	h.Press(core.KeyRight, t0.Add(100*time.Millisecond)) // auto-repeat

	h.Expire(t0.Add(200 * time.Millisecond))
	if !h.State().Pressed(core.KeyRight) {
		t.Error("auto-repeat should extend the hold")
	}
	h.Expire(t0.Add(250 * time.Millisecond))
	if h.State().Pressed(core.KeyRight) {
		t.Error("Right should be released 150ms after the last repeat")
	}
}

func TestHoldTrackerIndependentKeys(t *testing.T) {
	h := NewHoldTracker(100 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	h.Press(core.KeyLeft, t0)
	h.Press(core.KeyRight, t0.Add(80*time.Millisecond))
	h.Expire(t0.Add(120 * time.Millisecond))

	if h.State().Pressed(core.KeyLeft) {
		t.Error("Left should have expired")
	}
	if !h.State().Pressed(core.KeyRight) {
		t.Error("Right should still be held")
	}
}

func TestHoldTrackerResetAndDefaults(t *testing.T) {
	h := NewHoldTracker(0)
	if h.hold != DefaultHold {
		t.Errorf("hold = %v, expected %v", h.hold, DefaultHold)
	}

	now := time.Now()
	h.Press(core.KeyNone, now)
	h.Press(core.KeyLeft, now)
	h.Press(core.KeyRight, now)
	h.Reset()

	if h.State().Intent() != 0 || h.State().Pressed(core.KeyLeft) || h.State().Pressed(core.KeyRight) {
		t.Error("Reset should release every key")
	}
	if len(h.deadlines) != 0 {
		t.Errorf("Reset left %d deadlines", len(h.deadlines))
	}
}
