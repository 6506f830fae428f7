package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/cansat-drop/internal/config"
)

// MenuModel is the Bubble Tea model for the difficulty picker.
type MenuModel struct {
	cfg          config.Config
	best         func(config.Difficulty) int
	cursor       int
	width        int
	height       int
	keys         MenuKeyMap
	help         help.Model
	quitting     bool
	chosen       bool
	wantsHistory bool
}

// NewMenuModel creates a menu with the cursor on current.
// best may be nil.
func NewMenuModel(cfg config.Config, current config.Difficulty, best func(config.Difficulty) int, width, height int) MenuModel {
	cursor := 0
	for i, d := range config.Difficulties {
		if d == current {
			cursor = i
		}
	}

	h := help.New()
	h.Width = width

	return MenuModel{
		cfg:    cfg,
		best:   best,
		cursor: cursor,
		width:  width,
		height: height,
		keys:   DefaultMenuKeyMap(),
		help:   h,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(config.Difficulties)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		m.chosen = true

	case key.Matches(msg, m.keys.History):
		m.wantsHistory = true
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("C A N S A T"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty", m.width))
	b.WriteString("\n\n")

	for i, d := range config.Difficulties {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = activeStyle
		}

		speed, _ := m.cfg.Speed(d)
		line := fmt.Sprintf("%s%-9s speed %-4g", cursor, d.Title(), speed)
		if m.best != nil {
			line += fmt.Sprintf(" best %d", m.best(d))
		}
		b.WriteString(centerText(style.Render(line), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the difficulty under the cursor.
func (m MenuModel) Selected() config.Difficulty {
	return config.Difficulties[m.cursor]
}

// Chosen reports whether the user confirmed a difficulty.
func (m MenuModel) Chosen() bool {
	return m.chosen
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsHistory returns true if user requested the run history.
func (m MenuModel) WantsHistory() bool {
	return m.wantsHistory
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
