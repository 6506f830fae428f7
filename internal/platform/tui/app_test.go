package tui

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cansat-drop/internal/cansat"
	"github.com/vovakirdan/cansat-drop/internal/config"
)

func newTestApp(t *testing.T) AppModel {
	t.Helper()
	app, err := NewAppModel(testOptions(t, 0))
	if err != nil {
		t.Fatalf("NewAppModel() failed: %v", err)
	}
	return app
}

func send(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(AppModel), cmd
}

func TestAppMenuChangesDifficulty(t *testing.T) {
	app := newTestApp(t)

	app, _ = send(t, app, tea.KeyMsg{Type: tea.KeyEsc})
	if app.active != screenMenu {
		t.Fatalf("active = %v, expected menu", app.active)
	}
	if app.menu.Selected() != config.DifficultyAdvanced {
		t.Errorf("menu cursor on %v, expected the current difficulty", app.menu.Selected())
	}

	app, _ = send(t, app, tea.KeyMsg{Type: tea.KeyDown})
	app, _ = send(t, app, tea.KeyMsg{Type: tea.KeyEnter})

	if app.active != screenGame {
		t.Fatalf("active = %v, expected game after selecting", app.active)
	}
	if got := app.Game().Session().Selected(); got != config.DifficultyPro {
		t.Errorf("Selected() = %v, expected pro", got)
	}
	if app.Game().Session().Status() != cansat.StatusIdle {
		t.Error("selecting a difficulty should not start a run")
	}

	app, _ = send(t, app, runeKey('x'))
	if app.Game().Session().Player().Speed != 8 {
		t.Errorf("Speed = %v, expected 8", app.Game().Session().Player().Speed)
	}
}

func TestAppHistoryRoundTrip(t *testing.T) {
	app := newTestApp(t)

	app, _ = send(t, app, tea.KeyMsg{Type: tea.KeyTab})
	if app.active != screenHistory {
		t.Fatalf("active = %v, expected history", app.active)
	}
	if app.history.Level() != config.DifficultyAdvanced {
		t.Errorf("history opened on %v, expected advanced", app.history.Level())
	}

	app, _ = send(t, app, tea.KeyMsg{Type: tea.KeyEsc})
	if app.active != screenGame {
		t.Errorf("active = %v, expected game after esc", app.active)
	}
}

func TestAppTicksReachGame(t *testing.T) {
	app := newTestApp(t)
	app, _ = send(t, app, runeKey('x'))

	tok := app.Game().Session().Token()
	app, cmd := send(t, app, TickMsg{Token: tok})
	if app.Game().Session().Tick() != 1 || cmd == nil {
		t.Error("tick should step the game and schedule the next one")
	}
}

func TestAppQuitFromMenu(t *testing.T) {
	app := newTestApp(t)
	app, _ = send(t, app, tea.KeyMsg{Type: tea.KeyEsc})
	app, cmd := send(t, app, runeKey('q'))
	if !app.quitting || cmd == nil {
		t.Error("q in the menu should quit")
	}
	if app.View() != "" {
		t.Error("quitting app should render nothing")
	}
}

func TestAppResizeReachesHiddenGame(t *testing.T) {
	app := newTestApp(t)
	app, _ = send(t, app, tea.KeyMsg{Type: tea.KeyTab})
	app, _ = send(t, app, tea.WindowSizeMsg{Width: 120, Height: 50})

	if app.Game().screen.Width() != 120 {
		t.Errorf("game screen width = %d, expected 120", app.Game().screen.Width())
	}
	if app.history.width != 120 {
		t.Errorf("history width = %d, expected 120", app.history.width)
	}
}

func TestAppUnknownDifficultyIsLogged(t *testing.T) {
	var buf bytes.Buffer
	opts := testOptions(t, 0)
	opts.Logger = log.New(&buf)

	app, err := NewAppModel(opts)
	if err != nil {
		t.Fatalf("NewAppModel() failed: %v", err)
	}
	before := app.Game().Session().Selected()

	app.selectDifficulty("insane")

	if got := app.Game().Session().Selected(); got != before {
		t.Errorf("Selected() = %v, expected %v to be kept", got, before)
	}
	if !strings.Contains(buf.String(), "cannot select difficulty") {
		t.Errorf("expected a warning in the log, got %q", buf.String())
	}
}
