package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pacman/internal/registry"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

const (
	maxScores       = 100 // Rows loaded per maze and difficulty
	scoreDateLayout = "Jan 02 15:04"
)

var (
	boardTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	boardIdleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	boardFrameStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardEmptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 2)
)

// ScoreboardKeyMap holds the scoreboard bindings.
type ScoreboardKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	NextGame   key.Binding
	PrevGame   key.Binding
	Difficulty key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// ShortHelp implements help.KeyMap.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextGame, k.PrevGame, k.Difficulty, k.Back, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextGame, k.PrevGame, k.Difficulty},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns the scoreboard bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
		NextGame:   key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next maze")),
		PrevGame:   key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab/←", "prev maze")),
		Difficulty: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "difficulty")),
		Back:       key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel lists recorded games per maze, optionally narrowed to
// one difficulty.
type ScoreboardModel struct {
	store *storage.Store
	games []registry.GameInfo
	game  int

	// filters holds the difficulty labels to cycle through; the first
	// one is empty and matches every difficulty.
	filters []string
	filter  int

	scores []storage.ScoreEntry
	stats  *storage.GameStats

	table table.Model
	help  help.Model
	keys  ScoreboardKeyMap

	width    int
	height   int
	back     bool
	quitting bool
}

// NewScoreboardModel opens the scoreboard on the first maze with every
// difficulty shown.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		games:  registry.List(),
		help:   help.New(),
		keys:   DefaultScoreboardKeyMap(),
		width:  width,
		height: height,
	}
	m.table = m.newTable()
	m.refresh()
	return m
}

func (m *ScoreboardModel) newTable() table.Model {
	dateWidth := 14
	if m.width > 0 && m.width < 60 {
		dateWidth = 12
	}
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 5},
			{Title: "Score", Width: 9},
			{Title: "Level", Width: 6},
			{Title: "Difficulty", Width: 11},
			{Title: "Date", Width: dateWidth},
		}),
		table.WithFocused(true),
		table.WithHeight(max(m.height-11, 3)),
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

// currentFilter returns the difficulty label being shown, empty for all.
func (m ScoreboardModel) currentFilter() string {
	if m.filter < len(m.filters) {
		return m.filters[m.filter]
	}
	return ""
}

// refresh reloads filters, rows and stats for the selected maze. The
// difficulty filter survives a maze change when the new maze has it.
func (m *ScoreboardModel) refresh() {
	keep := m.currentFilter()
	m.filters = []string{""}
	m.filter = 0
	m.scores = nil
	m.stats = nil

	if len(m.games) > 0 && m.store != nil {
		id := m.games[m.game].ID
		best, _ := m.store.BestByDifficulty(id)
		m.filters = append(m.filters, scoreDifficulties...)
		m.filters = append(m.filters, extraDifficulties(best)...)
		for i, f := range m.filters {
			if f == keep {
				m.filter = i
			}
		}

		if scores, err := m.store.TopScores(id, m.currentFilter(), maxScores); err == nil {
			m.scores = scores
		}
		if stats, err := m.store.GetGameStats(id); err == nil {
			m.stats = stats
		}
	}

	rows := make([]table.Row, 0, len(m.scores))
	for i, s := range m.scores {
		rows = append(rows, table.Row{
			fmt.Sprintf("#%d", i+1),
			strconv.Itoa(s.Score),
			strconv.Itoa(s.Level),
			s.Difficulty,
			s.CreatedAt.Format(scoreDateLayout),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.back = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextGame):
			m.stepGame(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevGame):
			m.stepGame(-1)
			return m, nil
		case key.Matches(msg, m.keys.Difficulty):
			m.filter = (m.filter + 1) % len(m.filters)
			m.refresh()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// stepGame moves the maze selection by delta, wrapping around.
func (m *ScoreboardModel) stepGame(delta int) {
	if len(m.games) == 0 {
		return
	}
	m.game = (m.game + delta + len(m.games)) % len(m.games)
	m.refresh()
}

// View implements tea.Model.
func (m ScoreboardModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	title := "HIGH SCORES"
	if len(m.games) > 0 {
		title += " · " + m.games[m.game].Title
	}

	body := boardEmptyStyle.Render("Nothing recorded here yet.\nClear a maze to set a high score!")
	if len(m.scores) > 0 {
		body = m.table.View()
	}

	parts := []string{
		centerText(boardTitleStyle.Render(title), m.width),
		"",
		centerText(m.tabs(), m.width),
		centerText(m.filterLine(), m.width),
		centerText(m.statsLine(), m.width),
		"",
		lipgloss.PlaceHorizontal(m.width, lipgloss.Center, boardFrameStyle.Render(body)),
		m.help.View(m.keys),
	}
	return strings.Join(parts, "\n")
}

// tabs renders the maze names with the selected one highlighted.
func (m ScoreboardModel) tabs() string {
	out := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.game {
			out[i] = boardActiveStyle.Render(g.Title)
		} else {
			out[i] = boardIdleStyle.Render(g.Title)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, out...)
}

// filterLine shows the difficulty filters with the active one bracketed.
func (m ScoreboardModel) filterLine() string {
	names := make([]string, len(m.filters))
	for i, f := range m.filters {
		if f == "" {
			f = "all"
		}
		if i == m.filter {
			f = "[" + f + "]"
		}
		names[i] = f
	}
	return "Difficulty: " + strings.Join(names, " ")
}

// statsLine summarizes every recorded game of the selected maze.
func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return "No games played"
	}
	return fmt.Sprintf("Games: %d  Best: %d  Max level: %d  Avg: %.0f  Last: %s",
		m.stats.GamesCount, m.stats.HighScore, m.stats.MaxLevel, m.stats.AvgScore,
		m.stats.LastPlayed.Format(scoreDateLayout))
}

// IsGoingBack reports whether the user asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool { return m.back }

// IsQuitting reports whether the user asked to quit.
func (m ScoreboardModel) IsQuitting() bool { return m.quitting }

// RunScoreboard shows the scoreboard full screen. goBack is false when
// the user quit instead.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
