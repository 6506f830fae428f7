package cansat

// Token identifies one arming of a Loop.
type Token uint64

// Loop is the cancellable repeating task that drives steps.
// Start arms it for a new run and Stop disarms it; a scheduled tick carrying
// a Token is only admitted while the loop is armed with that same Token, so a
// tick left over from an earlier run can never step the current one.
type Loop struct {
	gen   Token
	armed bool
}

// Start arms the loop and returns the token of this arming.
func (l *Loop) Start() Token {
	l.gen++
	l.armed = true
	return l.gen
}

// Stop disarms the loop. Pending ticks are rejected by Accept afterwards.
func (l *Loop) Stop() {
	l.armed = false
}

// Token returns the token of the current (or last) arming.
func (l *Loop) Token() Token {
	return l.gen
}

// Accept reports whether a tick scheduled with tok may run.
func (l *Loop) Accept(tok Token) bool {
	return l.armed && tok == l.gen
}
