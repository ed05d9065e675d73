package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

func openMenuStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func menuItem(t *testing.T, m MenuModel, id string) MenuItem {
	t.Helper()
	for _, it := range m.items {
		if it.GameID == id {
			return it
		}
	}
	t.Fatalf("menu has no item %q", id)
	return MenuItem{}
}

func TestMenuItemBestLine(t *testing.T) {
	tests := []struct {
		name string
		item MenuItem
		want string
	}{
		{"never played", MenuItem{}, "no games yet"},
		{
			"presets in order with gaps",
			MenuItem{Played: 3, Best: map[string]int{"hard": 50, "easy": 1200}},
			"easy 1200 · normal - · hard 50 · fixed -",
		},
		{
			"other labels after presets",
			MenuItem{Played: 2, Best: map[string]int{"default": 7, "custom": 10}},
			"easy - · normal - · hard - · fixed - · custom 10 · default 7",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.item.BestLine(); got != tt.want {
				t.Errorf("BestLine() = %q, expected %q", got, tt.want)
			}
		})
	}
}

func TestMenuShowsBestPerDifficulty(t *testing.T) {
	store := openMenuStore(t)
	for _, e := range []storage.ScoreEntry{
		{GameID: "scripted", Score: 300, Difficulty: "easy"},
		{GameID: "scripted", Score: 900, Difficulty: "easy"},
		{GameID: "scripted", Score: 40, Difficulty: "hard"},
	} {
		if _, err := store.SaveScore(e); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	m := NewMenuModel(store, core.RuntimeConfig{ScreenW: 120, ScreenH: 40})
	it := menuItem(t, m, "scripted")
	if it.Played != 3 {
		t.Errorf("Played = %d, expected 3", it.Played)
	}
	if it.Best["easy"] != 900 || it.Best["hard"] != 40 {
		t.Errorf("Best = %v, expected easy=900 hard=40", it.Best)
	}
	if view := m.View(); !strings.Contains(view, "easy 900 · normal - · hard 40") {
		t.Errorf("View() does not list the per-difficulty records:\n%s", view)
	}
}

func TestMenuWithoutStore(t *testing.T) {
	m := NewMenuModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	if it := menuItem(t, m, "scripted"); it.Played != 0 || it.Best != nil {
		t.Errorf("item = %+v, expected no records", it)
	}
}

func TestMenuResults(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24}
	send := func(m MenuModel, msg tea.Msg) (MenuModel, tea.Cmd) {
		next, cmd := m.Update(msg)
		return next.(MenuModel), cmd
	}

	m, cmd := send(NewMenuModel(nil, cfg), tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil || m.Selected() == nil {
		t.Fatal("Enter should pick a maze and end the menu")
	}
	if r := m.result(); r.GameID != m.items[0].GameID || r.Quit || r.WantsScoreboard {
		t.Errorf("result() = %+v, expected the first maze", r)
	}

	m, _ = send(NewMenuModel(nil, cfg), tea.KeyMsg{Type: tea.KeyTab})
	if r := m.result(); !r.WantsScoreboard {
		t.Errorf("result() = %+v, expected the scoreboard", r)
	}

	m, _ = send(NewMenuModel(nil, cfg), tea.WindowSizeMsg{Width: 100, Height: 30})
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	r := m.result()
	if !r.Quit || r.Config.ScreenW != 100 || r.Config.ScreenH != 30 {
		t.Errorf("result() = %+v, expected quit with the resized config", r)
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestMenuCursorBounds(t *testing.T) {
	m := NewMenuModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	for range 5 {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
		m = next.(MenuModel)
	}
	if m.cursor != 0 {
		t.Errorf("cursor = %d after moving up, expected 0", m.cursor)
	}
	for range 20 {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = next.(MenuModel)
	}
	if m.cursor != len(m.items)-1 {
		t.Errorf("cursor = %d after moving down, expected %d", m.cursor, len(m.items)-1)
	}
}
