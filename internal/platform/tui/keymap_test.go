package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cansat-drop/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestGameKeyMap(t *testing.T) {
	km := DefaultGameKeyMap()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		key    core.Key
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionSteer, core.KeyLeft},
		{"a", runeKey('a'), core.ActionSteer, core.KeyLeft},
		{"h", runeKey('h'), core.ActionSteer, core.KeyLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionSteer, core.KeyRight},
		{"d", runeKey('d'), core.ActionSteer, core.KeyRight},
		{"l", runeKey('l'), core.ActionSteer, core.KeyRight},
		{"q", runeKey('q'), core.ActionQuit, core.KeyNone},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, core.KeyNone},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, core.ActionHistory, core.KeyNone},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionMenu, core.KeyNone},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionStart, core.KeyNone},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionStart, core.KeyNone},
		{"x", runeKey('x'), core.ActionStart, core.KeyNone},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionStart, core.KeyNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, k := km.MapKey(tc.msg)
			if action != tc.action || k != tc.key {
				t.Errorf("MapKey(%q) = %v, %v, expected %v, %v", tc.msg.String(), action, k, tc.action, tc.key)
			}
		})
	}
}

func TestGameKeyMapHelpKeys(t *testing.T) {
	km := DefaultGameKeyMap()

	tests := []struct {
		name    string
		binding []string
		k       core.Key
	}{
		{"left", km.Left.Keys(), core.KeyLeft},
		{"right", km.Right.Keys(), core.KeyRight},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			want := core.KeyNames(tc.k)
			if strings.Join(tc.binding, ",") != strings.Join(want, ",") {
				t.Errorf("binding keys = %v, expected %v", tc.binding, want)
			}
		})
	}
}
