package tui

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cansat-drop/internal/config"
	"github.com/vovakirdan/cansat-drop/internal/storage"
)

func TestHistoryModel(t *testing.T) {
	store, err := storage.OpenMemory()
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	for _, score := range []int{5, 50, 20} {
		store.RecordRun(storage.RunRecord{Difficulty: "pro", Score: score, Reason: "collision", Player: "bob"})
	}

	m := NewHistoryModel(store, config.DifficultyPro, 100, 30)
	if len(m.Runs()) != 3 || m.Runs()[0].Score != 50 {
		t.Fatalf("Runs() = %v, expected 3 runs led by 50", m.Runs())
	}
	if !strings.Contains(m.View(), "Best: 50") {
		t.Error("history should show the best score")
	}
	if !strings.Contains(m.View(), "Last run: 20 on Pro by bob (collision)") {
		t.Error("history should show the most recent run")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(HistoryModel)
	if m.Level() != config.DifficultyBeginner {
		t.Errorf("Level() = %v, expected wrap to beginner", m.Level())
	}
	if len(m.Runs()) != 0 {
		t.Errorf("beginner should have no runs, got %d", len(m.Runs()))
	}
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Error("empty level should show the empty message")
	}
}

func TestHistoryModelNilStore(t *testing.T) {
	m := NewHistoryModel(nil, "bogus", 60, 20)
	if m.Level() != config.DifficultyBeginner {
		t.Errorf("Level() = %v, expected beginner for an unknown level", m.Level())
	}
	if len(m.Runs()) != 0 {
		t.Error("nil store should show no runs")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(HistoryModel).IsGoingBack() {
		t.Error("esc should go back")
	}
}

func TestHistoryLevelSummary(t *testing.T) {
	store, err := storage.OpenMemory()
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	store.RecordRun(storage.RunRecord{Difficulty: "pro", Score: 42, Reason: "floor", Player: "eve"})

	wide := NewHistoryModel(store, config.DifficultyBeginner, 100, 30)
	proLine := fmt.Sprintf("%-8s %5s", "Pro", "42")
	if !strings.Contains(wide.View(), proLine) {
		t.Errorf("wide view should list %q in the level summary", proLine)
	}
	if !strings.Contains(wide.View(), fmt.Sprintf("%-8s %5s", "Beginner", "-")) {
		t.Error("levels without runs should show '-'")
	}

	narrow := NewHistoryModel(store, config.DifficultyBeginner, 60, 30)
	if strings.Contains(narrow.View(), proLine) {
		t.Error("narrow view should use tabs instead of the summary panel")
	}
}
