package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cansat-drop/internal/core"
)

// GameKeyMap defines the key bindings of the game screen.
// Any key not bound here starts or restarts a run.
type GameKeyMap struct {
	Left    key.Binding
	Right   key.Binding
	History key.Binding
	Menu    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Menu, k.History, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Menu, k.History, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Left: key.NewBinding(
			key.WithKeys(core.KeyNames(core.KeyLeft)...),
			key.WithHelp("←/a", "steer left"),
		),
		Right: key.NewBinding(
			key.WithKeys(core.KeyNames(core.KeyRight)...),
			key.WithHelp("→/d", "steer right"),
		),
		History: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "history"),
		),
		Menu: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "difficulty"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to a front-end action.
// Steering goes through core.ParseKey; for ActionSteer the key is returned
// as well.
func (k GameKeyMap) MapKey(msg tea.KeyMsg) (core.Action, core.Key) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, core.KeyNone
	case key.Matches(msg, k.History):
		return core.ActionHistory, core.KeyNone
	case key.Matches(msg, k.Menu):
		return core.ActionMenu, core.KeyNone
	}
	if steer, ok := core.ParseKey(msg.String()); ok {
		return core.ActionSteer, steer
	}
	return core.ActionStart, core.KeyNone
}

// MenuKeyMap defines the key bindings of the difficulty menu.
type MenuKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Select  key.Binding
	History key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.History, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w", "left"),
			key.WithHelp("↑/k", "easier"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s", "right"),
			key.WithHelp("↓/j", "harder"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		History: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "history"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
