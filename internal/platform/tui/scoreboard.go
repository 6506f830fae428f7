package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/cansat-drop/internal/config"
	"github.com/vovakirdan/cansat-drop/internal/storage"
)

// History layout constants
const (
	minWidthForPanel = 84 // Narrower terminals get level tabs instead of the summary panel
	panelWidth       = 22
	maxRuns          = 100
)

// HistoryKeyMap defines the key bindings for the run history.
type HistoryKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Next  key.Binding
	Prev  key.Binding
	Back  key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Prev, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Next, k.Prev},
		{k.Back, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "prev level"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next level"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next level"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev level"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model for the run history screen.
// It shows the best runs of this process, one difficulty at a time.
type HistoryModel struct {
	level     config.Difficulty
	store     *storage.Store
	runs      []storage.RunRecord
	stats     *storage.DifficultyStats
	summary   map[config.Difficulty]storage.DifficultyStats
	last      *storage.RunRecord
	table     table.Model
	help      help.Model
	keys      HistoryKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
	showPanel bool
}

// NewHistoryModel creates a history view opened on level.
func NewHistoryModel(store *storage.Store, level config.Difficulty, width, height int) HistoryModel {
	if !level.Valid() {
		level = config.Difficulties[0]
	}

	h := help.New()
	h.ShowAll = false
	h.Width = width

	m := HistoryModel{
		level:     level,
		store:     store,
		keys:      DefaultHistoryKeyMap(),
		help:      h,
		width:     width,
		height:    height,
		showPanel: width >= minWidthForPanel,
	}
	m.table = m.createTable()
	m.loadRuns()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "Ticks", Width: 7},
		{Title: "End", Width: 10},
		{Title: "Player", Width: 12},
		{Title: "Time", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)), // Room for header, stats, help and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadRuns loads the runs and stats of the current level.
func (m *HistoryModel) loadRuns() {
	m.runs, m.stats, m.last = nil, nil, nil
	m.summary = make(map[config.Difficulty]storage.DifficultyStats, len(config.Difficulties))
	if m.store == nil {
		m.updateTableRows()
		return
	}
	if runs, err := m.store.TopRuns(string(m.level), maxRuns); err == nil {
		m.runs = runs
	}
	if recent, err := m.store.RecentRuns(1); err == nil && len(recent) > 0 {
		m.last = &recent[0]
	}
	for _, d := range config.Difficulties {
		st, err := m.store.Stats(string(d))
		if err != nil {
			continue
		}
		m.summary[d] = *st
		if d == m.level {
			m.stats = st
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current runs.
func (m *HistoryModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Ticks),
			r.Reason,
			r.Player,
			r.CreatedAt.Format("15:04:05"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history view.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.Next), key.Matches(msg, m.keys.Right):
			m.level = m.level.Next()
			m.loadRuns()
			return m, nil

		case key.Matches(msg, m.keys.Prev), key.Matches(msg, m.keys.Left):
			m.level = m.level.Prev()
			m.loadRuns()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showPanel = m.width >= minWidthForPanel
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the run history.
func (m HistoryModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	title := fmt.Sprintf("RUN HISTORY - %s", m.level.Title())
	b.WriteString(centerText(titleStyle.Render(title), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(m.statsLine(), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(m.lastRunLine(), m.width))
	b.WriteString("\n\n")

	if m.showPanel {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m HistoryModel) statsLine() string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	if m.stats == nil || m.stats.Runs == 0 {
		return style.Render("No runs this session")
	}
	return style.Render(fmt.Sprintf("Runs: %d  Best: %d  Avg: %.1f",
		m.stats.Runs, m.stats.BestScore, m.stats.AvgScore))
}

// lastRunLine shows the most recent run on any level.
func (m HistoryModel) lastRunLine() string {
	if m.last == nil {
		return ""
	}
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return style.Render(fmt.Sprintf("Last run: %d on %s by %s (%s)",
		m.last.Score, config.Difficulty(m.last.Difficulty).Title(), m.last.Player, m.last.Reason))
}

// renderWideLayout puts a per-level summary panel beside the table.
func (m HistoryModel) renderWideLayout() string {
	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(panelWidth).
		Padding(0, 1)
	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		panel.Render(m.levelSummary()), "  ", tableStyle.Render(m.renderTableContent()))
}

// levelSummary lists every level with its best score, marking the one shown.
func (m HistoryModel) levelSummary() string {
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	active := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

	lines := []string{"Level     Best", dim.Render(strings.Repeat("─", panelWidth-4))}
	for _, d := range config.Difficulties {
		best := "-"
		if st, ok := m.summary[d]; ok && st.Runs > 0 {
			best = fmt.Sprintf("%d", st.BestScore)
		}
		line := fmt.Sprintf("%-8s %5s", d.Title(), best)
		if d == m.level {
			lines = append(lines, active.Render("▸ "+line))
		} else {
			lines = append(lines, dim.Render("  "+line))
		}
	}
	return strings.Join(lines, "\n")
}

// renderNarrowLayout renders the history with level tabs above the table.
func (m HistoryModel) renderNarrowLayout() string {
	var b strings.Builder

	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(config.Difficulties))
	for i, d := range config.Difficulties {
		if d == m.level {
			tabs[i] = activeTabStyle.Render(d.Title())
		} else {
			tabs[i] = tabStyle.Render(" " + d.Title() + " ")
		}
	}
	b.WriteString(centerText(strings.Join(tabs, " "), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(tableStyle.Render(m.renderTableContent()))
	return b.String()
}

// renderTableContent renders the table or empty message.
func (m HistoryModel) renderTableContent() string {
	if len(m.runs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No runs recorded yet.\nFinish a run to see it here!")
	}
	return m.table.View()
}

// Level returns the difficulty currently shown.
func (m HistoryModel) Level() config.Difficulty {
	return m.level
}

// Runs returns the runs currently shown.
func (m HistoryModel) Runs() []storage.RunRecord {
	return m.runs
}

// IsGoingBack returns true if user wants to go back to the game.
func (m HistoryModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m HistoryModel) IsQuitting() bool {
	return m.quitting
}
