package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/registry"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

// difficultySetter is implemented by games that take a per-game
// difficulty preset.
type difficultySetter interface {
	SetDifficulty(preset string)
}

// sessionStage is the screen a session is on.
type sessionStage int

const (
	stageMenu sessionStage = iota
	stageDifficulty
	stageGame
)

// SessionModel runs one remote player's visit in a single program:
// menu, then difficulty picker, then game, and back to the menu.
type SessionModel struct {
	store    *storage.Store
	reporter *storage.Reporter
	logger   *log.Logger
	config   core.RuntimeConfig

	// difficulty is the preset forced on every game; empty lets the
	// player pick one.
	difficulty string

	stage  sessionStage
	menu   MenuModel
	picker DifficultyModel
	gameID string
	game   *Model
	done   bool
}

// NewSessionModel creates a session that starts on the menu.
func NewSessionModel(store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) SessionModel {
	if logger == nil {
		logger = log.Default()
	}
	return SessionModel{
		store:    store,
		reporter: storage.NewReporter(store, logger),
		logger:   logger,
		config:   cfg,
		menu:     NewMenuModel(store, cfg),
	}
}

// Init implements tea.Model.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update implements tea.Model. Quit commands from the inner screens are
// dropped; the session only ends when the player quits.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW, m.config.ScreenH = ws.Width, ws.Height
	}

	switch m.stage {
	case stageGame:
		return m.updateGame(msg)
	case stageDifficulty:
		return m.updatePicker(msg)
	default:
		return m.updateMenu(msg)
	}
}

// toMenu rebuilds the menu so it shows fresh records.
func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.stage = stageMenu
	m.game = nil
	m.gameID = ""
	m.menu = NewMenuModel(m.store, m.config)
	return m, m.menu.Init()
}

func (m SessionModel) quit() (tea.Model, tea.Cmd) {
	m.done = true
	return m, tea.Quit
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	m.menu = next.(MenuModel)

	switch {
	case m.menu.IsQuitting():
		return m.quit()
	case m.menu.WantsScoreboard():
		// The scoreboard needs its own program; remote players stay here.
		return m.toMenu()
	case m.menu.Selected() != nil:
		m.config = m.menu.Config()
		m.gameID = m.menu.Selected().GameID
		if m.difficulty != "" {
			return m.startGame(m.difficulty)
		}
		m.stage = stageDifficulty
		m.picker = NewDifficultyModel(m.config.ScreenW, m.config.ScreenH)
		return m, m.picker.Init()
	}
	return m, cmd
}

func (m SessionModel) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.picker.Update(msg)
	m.picker = next.(DifficultyModel)

	if m.picker.IsQuitting() {
		return m.quit()
	}
	if m.picker.WantsBack() {
		return m.toMenu()
	}
	if preset, ok := m.picker.Selected(); ok {
		return m.startGame(string(preset))
	}
	return m, cmd
}

// startGame creates the chosen maze on the given difficulty.
func (m SessionModel) startGame(difficulty string) (tea.Model, tea.Cmd) {
	game, err := registry.Create(m.gameID)
	if err != nil {
		m.logger.Error("cannot create game", "game", m.gameID, "err", err)
		return m.toMenu()
	}
	if ds, ok := game.(difficultySetter); ok {
		ds.SetDifficulty(difficulty)
	}

	m.config.Seed = time.Now().UnixNano()
	m.logger.Info("game started", "game", m.gameID, "difficulty", difficulty)

	gm := NewModel(game, m.reporter, m.logger, m.config)
	gm.embedded = true
	m.game = &gm
	m.stage = stageGame
	return m, m.game.Init()
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	gm := next.(Model)
	m.game = &gm

	switch {
	case gm.BackToMenu():
		st := gm.State()
		m.logger.Info("game left", "game", m.gameID, "score", st.Score, "level", st.Level)
		return m.toMenu()
	case gm.IsQuitting():
		return m.quit()
	}
	return m, cmd
}

// View implements tea.Model.
func (m SessionModel) View() string {
	if m.done {
		return ""
	}
	switch m.stage {
	case stageGame:
		return m.game.View()
	case stageDifficulty:
		return m.picker.View()
	default:
		return m.menu.View()
	}
}
