package tui

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/registry"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

// scoreDifficulties is the order difficulties appear in on the menu and
// in the scoreboard filter. Labels outside it are listed after, sorted.
var scoreDifficulties = []string{
	string(config.DifficultyEasy),
	string(config.DifficultyNormal),
	string(config.DifficultyHard),
	string(config.DifficultyFixed),
}

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226"))
	menuPickStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuItem is one maze variant on the menu with its record so far.
type MenuItem struct {
	GameID string
	Title  string
	Played int            // Finished games recorded
	Best   map[string]int // Best score per difficulty label
}

// BestLine lists the best score for each difficulty, with a dash for
// presets that were never played.
func (it MenuItem) BestLine() string {
	if it.Played == 0 {
		return "no games yet"
	}

	parts := make([]string, 0, len(scoreDifficulties)+len(it.Best))
	for _, d := range scoreDifficulties {
		if best, ok := it.Best[d]; ok {
			parts = append(parts, fmt.Sprintf("%s %d", d, best))
		} else {
			parts = append(parts, d+" -")
		}
	}
	for _, d := range extraDifficulties(it.Best) {
		parts = append(parts, fmt.Sprintf("%s %d", d, it.Best[d]))
	}
	return strings.Join(parts, " · ")
}

// extraDifficulties returns the labels of best that are not presets.
func extraDifficulties(best map[string]int) []string {
	var extra []string
	for d := range best {
		if !isPresetLabel(d) {
			extra = append(extra, d)
		}
	}
	sort.Strings(extra)
	return extra
}

func isPresetLabel(d string) bool {
	for _, p := range scoreDifficulties {
		if p == d {
			return true
		}
	}
	return false
}

// loadMenuItems reads every registered variant and its records. A nil
// store or a failed query leaves the records empty.
func loadMenuItems(store *storage.Store) []MenuItem {
	var stats map[string]*storage.GameStats
	if store != nil {
		stats, _ = store.GetAllGamesStats()
	}

	var items []MenuItem
	for _, g := range registry.List() {
		it := MenuItem{GameID: g.ID, Title: g.Title}
		if st, ok := stats[g.ID]; ok {
			it.Played = st.GamesCount
		}
		if store != nil && it.Played > 0 {
			if best, err := store.BestByDifficulty(g.ID); err == nil {
				it.Best = best
			}
		}
		items = append(items, it)
	}
	return items
}

// MenuModel picks the maze to play, or sends the user to the scoreboard.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper

	picked     *MenuItem
	scoreboard bool
	quitting   bool
}

// NewMenuModel creates a menu over every registered variant.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		items:     loadMenuItems(store),
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init implements tea.Model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Choosing a maze, opening the scoreboard
// and quitting all end the program; the caller reads which one happened.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height

	case tea.KeyMsg:
		switch m.keyMapper.MapKeyToMenuAction(msg) {
		case MenuActionUp:
			m.cursor = max(m.cursor-1, 0)
		case MenuActionDown:
			m.cursor = min(m.cursor+1, max(len(m.items)-1, 0))
		case MenuActionSelect:
			if len(m.items) == 0 {
				return m, nil
			}
			it := m.items[m.cursor]
			m.picked = &it
			return m, tea.Quit
		case MenuActionScoreboard:
			m.scoreboard = true
			return m, tea.Quit
		case MenuActionQuit:
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	w := m.config.ScreenW

	lines := []string{
		"",
		centerText(menuTitleStyle.Render("ᗧ · · · P A C - M A N · · · ᗣ"), w),
		"",
		centerText(menuDimStyle.Render("Choose a maze"), w),
		"",
	}
	for i, it := range m.items {
		name := "  " + it.Title
		if i == m.cursor {
			name = menuPickStyle.Render("> " + it.Title)
		}
		lines = append(lines,
			centerText(name, w),
			centerText(menuDimStyle.Render(fmt.Sprintf("%d played | best: %s", it.Played, it.BestLine())), w),
			"",
		)
	}
	lines = append(lines, centerText(menuDimStyle.Render("↑/↓ move · enter play · tab scores · q quit"), w))

	return strings.Join(lines, "\n")
}

// Selected returns the chosen maze, or nil.
func (m MenuModel) Selected() *MenuItem { return m.picked }

// IsQuitting reports whether the user asked to quit.
func (m MenuModel) IsQuitting() bool { return m.quitting }

// WantsScoreboard reports whether the user asked for the scoreboard.
func (m MenuModel) WantsScoreboard() bool { return m.scoreboard }

// Config returns the runtime config, with the size of the last resize.
func (m MenuModel) Config() core.RuntimeConfig { return m.config }

// centerText left-pads text to center it within width. Width is measured
// in terminal cells, so styled text centers by its visible length.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// MenuResult is what the user did on the menu.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// result converts the final menu state into a MenuResult.
func (m MenuModel) result() MenuResult {
	r := MenuResult{Config: m.config}
	switch {
	case m.scoreboard:
		r.WantsScoreboard = true
	case m.picked != nil:
		r.GameID = m.picked.GameID
	default:
		r.Quit = true
	}
	return r
}

// RunMenu shows the menu full screen until the user picks something.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	final, err := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.result(), nil
}
