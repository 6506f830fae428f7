package tui

import (
	"time"

	"github.com/vovakirdan/cansat-drop/internal/core"
)

// DefaultHold is used when the configured hold duration is zero.
const DefaultHold = 150 * time.Millisecond

// HoldTracker turns key presses into held keys.
// Terminals send a press (and auto-repeats while the key is down) but never
// a release, so a key counts as held until hold has passed since its last
// press.
type HoldTracker struct {
	hold      time.Duration
	deadlines map[core.Key]time.Time
	state     core.InputState
}

// NewHoldTracker creates a tracker. A non-positive hold uses DefaultHold.
func NewHoldTracker(hold time.Duration) *HoldTracker {
	if hold <= 0 {
		hold = DefaultHold
	}
	return &HoldTracker{
		hold:      hold,
		deadlines: make(map[core.Key]time.Time),
		state:     core.NewInputState(),
	}
}

// Press marks k as held and extends its deadline.
func (h *HoldTracker) Press(k core.Key, now time.Time) {
	if k == core.KeyNone {
		return
	}
	h.deadlines[k] = now.Add(h.hold)
	h.state.Press(k)
}

// Release drops k immediately.
func (h *HoldTracker) Release(k core.Key) {
	delete(h.deadlines, k)
	h.state.Release(k)
}

// Expire releases every key whose deadline is not after now.
func (h *HoldTracker) Expire(now time.Time) {
	for k, deadline := range h.deadlines {
		if !now.Before(deadline) {
			h.Release(k)
		}
	}
}

// Reset releases all keys.
func (h *HoldTracker) Reset() {
	for k := range h.deadlines {
		h.Release(k)
	}
}

// State returns the current input state.
func (h *HoldTracker) State() core.InputState {
	return h.state
}
