package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cansat-drop/internal/config"
	"github.com/vovakirdan/cansat-drop/internal/storage"
)

type screenID int

const (
	screenGame screenID = iota
	screenMenu
	screenHistory
)

// AppModel manages the full flow of one player: game <-> difficulty menu
// and game <-> run history. It is the top-level model for local play and
// for each SSH session.
type AppModel struct {
	game     Model
	menu     MenuModel
	history  HistoryModel
	store    *storage.Store
	active   screenID
	width    int
	height   int
	quitting bool
}

// NewAppModel creates the app on the game's start screen.
func NewAppModel(opts Options) (AppModel, error) {
	game, err := NewModel(opts)
	if err != nil {
		return AppModel{}, err
	}
	return AppModel{
		game:   game,
		store:  opts.Store,
		width:  opts.Runtime.ScreenW,
		height: opts.Runtime.ScreenH,
	}, nil
}

// Init initializes the app.
func (m AppModel) Init() tea.Cmd {
	return m.game.Init()
}

// Update routes messages to the active screen.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// The game keeps its screen sized even while hidden.
		g, _ := m.game.Update(msg)
		m.game = g.(Model)
		if m.active == screenGame {
			return m, nil
		}

	case TickMsg:
		// Ticks belong to the game whatever screen is shown.
		g, cmd := m.game.Update(msg)
		m.game = g.(Model)
		return m, cmd
	}

	switch m.active {
	case screenMenu:
		return m.updateMenu(msg)
	case screenHistory:
		return m.updateHistory(msg)
	default:
		return m.updateGame(msg)
	}
}

func (m AppModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	g, cmd := m.game.Update(msg)
	m.game = g.(Model)

	switch {
	case m.game.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.game.wantsMenu:
		m.game.wantsMenu = false
		s := m.game.Session()
		m.menu = NewMenuModel(m.game.cfg, s.Selected(), m.game.hud.Best, m.width, m.height)
		m.active = screenMenu

	case m.game.wantsHistory:
		m.game.wantsHistory = false
		m.openHistory()
	}
	return m, cmd
}

// selectDifficulty applies a menu choice to the next run. A level the
// config has no speed for is logged and the previous choice kept.
func (m *AppModel) selectDifficulty(d config.Difficulty) {
	if err := m.game.session.SelectDifficulty(d); err != nil {
		m.game.logger.Warn("cannot select difficulty", "difficulty", d, "error", err)
	}
}

func (m AppModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	mm, cmd := m.menu.Update(msg)
	m.menu = mm.(MenuModel)

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.Chosen():
		m.selectDifficulty(m.menu.Selected())
		m.active = screenGame

	case m.menu.WantsHistory():
		m.openHistory()
	}
	return m, cmd
}

func (m AppModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	hm, cmd := m.history.Update(msg)
	m.history = hm.(HistoryModel)

	switch {
	case m.history.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.history.IsGoingBack():
		m.active = screenGame
	}
	return m, cmd
}

func (m *AppModel) openHistory() {
	m.history = NewHistoryModel(m.store, m.game.Session().Selected(), m.width, m.height)
	m.active = screenHistory
}

// View renders the active screen.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.active {
	case screenMenu:
		return m.menu.View()
	case screenHistory:
		return m.history.View()
	default:
		return m.game.View()
	}
}

// Game returns the game model.
func (m AppModel) Game() Model {
	return m.game
}

// Run starts a local Bubble Tea program on the alternate screen.
func Run(opts Options) error {
	model, err := NewAppModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
