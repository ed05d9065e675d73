package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pacman/internal/storage"
)

func boardKey(m ScoreboardModel, r rune) ScoreboardModel {
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	return next.(ScoreboardModel)
}

func seededBoard(t *testing.T) ScoreboardModel {
	t.Helper()
	store := openMenuStore(t)
	for _, e := range []storage.ScoreEntry{
		{GameID: "scripted", Score: 500, Level: 3, Difficulty: "hard"},
		{GameID: "scripted", Score: 200, Level: 1, Difficulty: "easy"},
		{GameID: "scripted", Score: 50},
	} {
		if _, err := store.SaveScore(e); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	m := NewScoreboardModel(store, 100, 40)
	for i, g := range m.games {
		if g.ID == "scripted" {
			m.game = i
		}
	}
	m.refresh()
	return m
}

func TestScoreboardRowsShowLevelAndDifficulty(t *testing.T) {
	m := seededBoard(t)

	rows := m.table.Rows()
	if len(rows) != 3 {
		t.Fatalf("len(rows) = %d, expected 3", len(rows))
	}
	want := [][]string{
		{"#1", "500", "3", "hard"},
		{"#2", "200", "1", "easy"},
		{"#3", "50", "1", storage.UnknownDifficulty},
	}
	for i, w := range want {
		if got := rows[i][:4]; strings.Join(got, ",") != strings.Join(w, ",") {
			t.Errorf("rows[%d] = %v, expected %v", i, got, w)
		}
	}
}

func TestScoreboardDifficultyFilter(t *testing.T) {
	m := seededBoard(t)

	// all, easy, normal, hard, fixed, then labels seen in the data
	wantFilters := []string{"", "easy", "normal", "hard", "fixed", storage.UnknownDifficulty}
	if strings.Join(m.filters, ",") != strings.Join(wantFilters, ",") {
		t.Fatalf("filters = %q, expected %q", m.filters, wantFilters)
	}
	if !strings.Contains(m.filterLine(), "[all]") {
		t.Errorf("filterLine() = %q, expected all to be active", m.filterLine())
	}

	m = boardKey(m, 'd')
	if m.currentFilter() != "easy" || len(m.scores) != 1 || m.scores[0].Score != 200 {
		t.Errorf("easy filter shows %+v", m.scores)
	}

	m = boardKey(m, 'd')
	if m.currentFilter() != "normal" || len(m.scores) != 0 {
		t.Errorf("normal filter shows %+v, expected nothing", m.scores)
	}
	if !strings.Contains(m.View(), "Nothing recorded here yet") {
		t.Error("An empty filter should show the empty message")
	}

	for range len(wantFilters) - 2 {
		m = boardKey(m, 'd')
	}
	if m.currentFilter() != "" || len(m.scores) != 3 {
		t.Errorf("filter = %q with %d rows, expected to wrap to all", m.currentFilter(), len(m.scores))
	}
}

func TestScoreboardStatsLine(t *testing.T) {
	m := seededBoard(t)
	line := m.statsLine()
	for _, part := range []string{"Games: 3", "Best: 500", "Max level: 3"} {
		if !strings.Contains(line, part) {
			t.Errorf("statsLine() = %q, missing %q", line, part)
		}
	}

	empty := NewScoreboardModel(nil, 80, 24)
	if got := empty.statsLine(); got != "No games played" {
		t.Errorf("statsLine() without a store = %q", got)
	}
	if len(empty.filters) != 1 {
		t.Errorf("filters without a store = %q, expected only all", empty.filters)
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)

	back := boardKey(m, 'b')
	if !back.IsGoingBack() || back.IsQuitting() {
		t.Error("b should go back to the menu")
	}

	quit := boardKey(m, 'q')
	if !quit.IsQuitting() || quit.IsGoingBack() {
		t.Error("q should quit")
	}
	if quit.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}
