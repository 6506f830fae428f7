package core

// Key identifies a logical steering key, abstracted from physical key presses.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	default:
		return "None"
	}
}

// steerNames lists the key names bound to each steering key.
var steerNames = map[Key][]string{
	KeyLeft:  {"left", "a", "h"},
	KeyRight: {"right", "d", "l"},
}

// KeyNames returns the key names that map to k, or nil for KeyNone.
func KeyNames(k Key) []string {
	return append([]string(nil), steerNames[k]...)
}

// ParseKey maps a key name to a steering key.
// Returns false for keys that do not steer; callers ignore those.
func ParseKey(name string) (Key, bool) {
	for k, names := range steerNames {
		for _, n := range names {
			if n == name {
				return k, true
			}
		}
	}
	return KeyNone, false
}

// InputState is the last known pressed/released state of each steering key.
// It is updated on press and release events and read, never cleared, by the
// simulation step.
type InputState struct {
	pressed map[Key]bool
}

// NewInputState creates an input state with every key released.
func NewInputState() InputState {
	return InputState{
		pressed: make(map[Key]bool),
	}
}

// Press marks a key as held. KeyNone is ignored.
func (s *InputState) Press(k Key) {
	if k == KeyNone {
		return
	}
	if s.pressed == nil {
		s.pressed = make(map[Key]bool)
	}
	s.pressed[k] = true
}

// Release marks a key as no longer held.
func (s *InputState) Release(k Key) {
	if s.pressed == nil {
		return
	}
	delete(s.pressed, k)
}

// Pressed reports whether the key is currently held.
func (s InputState) Pressed(k Key) bool {
	if s.pressed == nil {
		return false
	}
	return s.pressed[k]
}

// Snapshot returns an independent copy, so a step reads a consistent view even
// if events arrive while it runs.
func (s InputState) Snapshot() InputState {
	clone := NewInputState()
	for k, v := range s.pressed {
		clone.pressed[k] = v
	}
	return clone
}

// Intent summarizes the held keys as a signed horizontal direction.
// Both keys held cancel out to 0.
func (s InputState) Intent() int {
	intent := 0
	if s.Pressed(KeyLeft) {
		intent--
	}
	if s.Pressed(KeyRight) {
		intent++
	}
	return intent
}

// Action represents a semantic front-end action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionSteer          // arrow keys, a/d, h/l - steering, also starts a run
	ActionStart          // any other key - start or restart a run
	ActionHistory        // Tab - show run history
	ActionMenu           // Esc - back to difficulty selection
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionSteer:
		return "Steer"
	case ActionStart:
		return "Start"
	case ActionHistory:
		return "History"
	case ActionMenu:
		return "Menu"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
