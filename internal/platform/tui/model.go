package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cansat-drop/internal/cansat"
	"github.com/vovakirdan/cansat-drop/internal/config"
	"github.com/vovakirdan/cansat-drop/internal/core"
	"github.com/vovakirdan/cansat-drop/internal/storage"
)

// LocalPlayer is the player name recorded for runs played outside SSH.
const LocalPlayer = "local"

// Options configures a game model.
type Options struct {
	Config  config.Config
	Runtime core.RuntimeConfig
	Store   *storage.Store // May be nil; runs are then not recorded
	Logger  *log.Logger    // May be nil
	Player  string
}

// Model is the Bubble Tea model of the game screen.
// It owns one cansat.Session and drives it from key and tick messages.
type Model struct {
	cfg     config.Config
	runtime core.RuntimeConfig
	session *cansat.Session
	layout  *cansat.Layout
	hud     *HUD
	hold    *HoldTracker
	screen  *core.Screen
	keys    GameKeyMap
	help    help.Model
	now     func() time.Time
	logger  *log.Logger

	quitting     bool
	wantsMenu    bool
	wantsHistory bool
}

// NewModel creates the game model in the Idle state.
func NewModel(opts Options) (Model, error) {
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Player == "" {
		opts.Player = LocalPlayer
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	layout := cansat.NewLayout(opts.Config)
	hud := NewHUD()
	session, err := cansat.NewSession(opts.Config, layout, hud, opts.Runtime.Seed)
	if err != nil {
		return Model{}, err
	}
	session.OnRunEnd(runRecorder(opts.Store, logger, opts.Player, hud))

	h := help.New()
	h.Width = opts.Runtime.ScreenW

	return Model{
		cfg:     opts.Config,
		runtime: opts.Runtime,
		session: session,
		layout:  layout,
		hud:     hud,
		hold:    NewHoldTracker(opts.Config.Input.Hold()),
		screen:  core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH-1),
		keys:    DefaultGameKeyMap(),
		help:    h,
		now:     time.Now,
		logger:  logger,
	}, nil
}

// runRecorder returns the run-end listener: it updates the best score,
// logs the run and stores it.
func runRecorder(store *storage.Store, logger *log.Logger, player string, hud *HUD) func(cansat.RunSummary) {
	return func(sum cansat.RunSummary) {
		hud.RecordBest(sum.Difficulty, sum.Score)
		logger.Info("run ended",
			"player", player,
			"difficulty", sum.Difficulty,
			"score", sum.Score,
			"ticks", sum.Ticks,
			"reason", sum.Reason,
		)

		if store == nil {
			return
		}
		_, err := store.RecordRun(storage.RunRecord{
			Difficulty: string(sum.Difficulty),
			Score:      sum.Score,
			Ticks:      sum.Ticks,
			Reason:     sum.Reason.String(),
			Player:     player,
		})
		if err != nil {
			logger.Warn("could not record run", "error", err)
			return
		}
		// The store is shared between SSH sessions.
		if best, err := store.BestScore(string(sum.Difficulty)); err == nil {
			hud.RecordBest(sum.Difficulty, best)
		}
	}
}

// Init does nothing; the first key press starts a run.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height-1)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, k := m.keys.MapKey(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionMenu, core.ActionHistory:
		if m.session.Status() == cansat.StatusRunning {
			return m, nil
		}
		m.wantsMenu = action == core.ActionMenu
		m.wantsHistory = action == core.ActionHistory
		return m, nil

	case core.ActionSteer:
		m.hold.Press(k, m.now())
	}

	// Every other key starts a run unless one is in progress.
	if m.session.Trigger() {
		return m, tickCmd(m.runtime.TickRate, m.session.Token())
	}
	return m, nil
}

// handleTick steps the session and schedules the next tick while running.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.session.Accept(msg.Token) {
		return m, nil
	}

	m.hold.Expire(msg.Time)
	result := m.session.Step(m.hold.State())
	if result.Status != cansat.StatusRunning {
		m.hold.Reset()
		return m, nil
	}
	return m, tickCmd(m.runtime.TickRate, msg.Token)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	drawGame(m.screen, m.layout, m.session, m.hud, m.hold.State().Intent())

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Session returns the game session.
func (m Model) Session() *cansat.Session {
	return m.session
}

// IsQuitting returns true if user requested to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}
