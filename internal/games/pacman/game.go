// Package pacman implements a Pac-Man style maze chase: a player eating
// dots while four ghosts with fixed strategies hunt it.
package pacman

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/registry"
)

// Variant selects how the maze is built.
type Variant string

const (
	VariantGenerated Variant = "generated" // Random maze from the generator
	VariantClassic   Variant = "classic"   // Fixed arcade layout
)

const hudHeight = 2

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Difficulty labels for games that run without a named preset.
const (
	DifficultyDefault = "default" // Built-in or user config, no preset
	DifficultyCustom  = "custom"  // Explicit config file or NewWithConfig
)

// Game implements the Pac-Man game logic.
type Game struct {
	variant    Variant
	custom     *config.PacmanConfig // Overrides file loading when set
	preset     config.DifficultyPreset
	label      string
	cfg        config.PacmanConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand

	tick     uint64
	tickRate int
	tickDur  time.Duration
	level    int
	score    int

	maze   *Maze
	player *Player
	ghosts []*Ghost

	// Power mode countdown; zero when inactive.
	powerLeft   time.Duration
	powerWindow time.Duration

	gameOver bool
	paused   bool
	tooSmall bool

	// Layout
	screenW int
	screenH int
	cellW   int // Screen columns per maze cell
	offsetX int
	offsetY int
}

// New creates a Pac-Man game on a generated maze.
func New() *Game {
	return &Game{variant: VariantGenerated}
}

// NewClassic creates a Pac-Man game on the classic layout.
func NewClassic() *Game {
	return &Game{variant: VariantClassic}
}

// NewWithConfig creates a game that uses cfg instead of loading config files.
func NewWithConfig(variant Variant, cfg config.PacmanConfig) *Game {
	return &Game{variant: variant, custom: &cfg}
}

func init() {
	registry.Register("pacman", func() registry.Game {
		return New()
	})
	registry.Register("pacman_classic", func() registry.Game {
		return NewClassic()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.variant == VariantClassic {
		return "pacman_classic"
	}
	return "pacman"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == VariantClassic {
		return "Pac-Man Classic"
	}
	return "Pac-Man"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.loadConfig()

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.tickRate = runtime.TickRate
	g.tickDur = runtime.TickDuration()
	g.powerWindow = roundToTicks(g.cfg.Power.Duration(), g.tickDur)

	g.tick = 0
	g.level = 1
	g.score = 0
	g.gameOver = false
	g.paused = false

	g.buildLevel()
	g.Resize(runtime.ScreenW, runtime.ScreenH)
}

// SetDifficulty picks a preset for this game only. It takes precedence
// over SetDifficultyPreset and also applies on top of a NewWithConfig
// config. Unknown names clear it. It applies from the next Reset.
func (g *Game) SetDifficulty(preset string) {
	g.preset = config.ParsePreset(preset)
}

// Difficulty returns the label of the difficulty the game was last reset
// with: a preset name, DifficultyCustom or DifficultyDefault.
func (g *Game) Difficulty() string {
	return g.label
}

func (g *Game) loadConfig() {
	preset := g.preset
	if g.custom != nil {
		g.cfg = *g.custom
	} else {
		if preset == "" {
			preset = difficultyPreset
		}
		cfg, err := config.LoadPacman(configPath)
		if err != nil {
			cfg = config.DefaultPacmanConfig()
		}
		g.cfg = cfg
	}

	// Apply difficulty preset if set
	if preset != "" {
		config.ApplyPacmanPreset(&g.cfg, preset)
	}

	switch {
	case preset != "":
		g.label = string(preset)
	case g.custom != nil || configPath != "":
		g.label = DifficultyCustom
	default:
		g.label = DifficultyDefault
	}

	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
}

// roundToTicks rounds d to a whole number of ticks, at least one.
func roundToTicks(d, tick time.Duration) time.Duration {
	n := int64(math.Round(float64(d) / float64(tick)))
	return time.Duration(max(n, 1)) * tick
}

// buildLevel creates a fresh maze and places the player and ghosts.
func (g *Game) buildLevel() {
	mc := g.cfg.Maze

	switch g.variant {
	case VariantClassic:
		lines := mc.Layout
		if len(lines) == 0 {
			lines = classicLayout
		}
		m, err := ParseLayout(lines, mc.CellSize)
		if err != nil {
			// A broken custom layout falls back to the built-in one
			m, _ = ParseLayout(classicLayout, mc.CellSize)
		}
		g.maze = m
	default:
		gen := NewGenerator(g.rng, mc.CellSize, mc.HouseWidth, mc.HouseHeight)
		g.maze = gen.Generate(mc.Width, mc.Height)
	}

	g.player = NewPlayer(g.maze, g.cfg.Player.Speed, g.cfg.Player.MouthStep)
	g.spawnGhosts()
	g.powerLeft = 0
}

// spawnGhosts spreads one ghost per configured strategy over the house.
func (g *Game) spawnGhosts() {
	gc := g.cfg.Ghosts
	homes := g.maze.HouseCells()
	speed := g.ghostSpeed()

	g.ghosts = make([]*Ghost, 0, len(gc.Strategies))
	for i, name := range gc.Strategies {
		s, err := NewStrategy(name, gc.AmbushOffset, gc.RandomTurnChance)
		if err != nil {
			s = Aggressive{}
		}
		spawn := homes[i*len(homes)/len(gc.Strategies)]
		color := ghostColors[i%len(ghostColors)]
		g.ghosts = append(g.ghosts, NewGhost(g.maze, spawn, s, color, speed, gc.VulnerableFactor))
	}
}

// ghostSpeed returns the full ghost speed for the current score and time.
// It stays strictly below half a cell so turns never skip to the centre.
func (g *Game) ghostSpeed() float64 {
	speed := g.difficulty.Speed(g.cfg.Ghosts.Speed, g.score, g.tick)
	return math.Min(speed, math.Nextafter(g.cfg.Maze.CellSize/2, 0))
}

// Resize recomputes the screen layout. The session and maze are kept.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	if g.maze == nil {
		return
	}

	mw, mh := g.maze.Width(), g.maze.Height()
	g.cellW = 2
	if w < mw*2 {
		g.cellW = 1
	}
	g.tooSmall = w < mw*g.cellW || h < mh+hudHeight

	g.offsetX = (w - mw*g.cellW) / 2
	g.offsetY = hudHeight
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	// Handle restart
	if input.Has(core.ActionRestart) && g.gameOver {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
		})
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.gameOver || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.processInput(input)
	g.updatePower()
	g.updatePlayer()
	g.updateGhosts()
	g.checkCollisions()

	if !g.gameOver && g.maze.DotsLeft() == 0 {
		g.level++
		g.buildLevel()
		g.Resize(g.screenW, g.screenH)
	}

	return core.StepResult{State: g.State()}
}

// processInput forwards direction requests to the player.
func (g *Game) processInput(input core.InputFrame) {
	switch {
	case input.Has(core.ActionUp):
		g.player.SetDirection(DirUp)
	case input.Has(core.ActionDown):
		g.player.SetDirection(DirDown)
	case input.Has(core.ActionLeft):
		g.player.SetDirection(DirLeft)
	case input.Has(core.ActionRight):
		g.player.SetDirection(DirRight)
	}
}

// updatePower counts the power window down and ends it at zero.
func (g *Game) updatePower() {
	if g.powerLeft <= 0 {
		return
	}
	g.powerLeft -= g.tickDur
	if g.powerLeft <= 0 {
		g.powerLeft = 0
		for _, gh := range g.ghosts {
			gh.SetNormal()
		}
	}
}

func (g *Game) updatePlayer() {
	switch g.player.Update(g.maze) {
	case CellDot:
		g.score += g.cfg.Scoring.Dot
	case CellPower:
		g.score += g.cfg.Scoring.PowerDot
		g.activatePower()
	}
}

// activatePower re-arms the full window and makes every ghost vulnerable.
func (g *Game) activatePower() {
	g.powerLeft = g.powerWindow
	for _, gh := range g.ghosts {
		gh.SetVulnerable()
	}
}

func (g *Game) updateGhosts() {
	w := g.world()
	speed := g.ghostSpeed()
	for _, gh := range g.ghosts {
		gh.SetBaseSpeed(speed)
		gh.Update(w)
	}
}

func (g *Game) world() *World {
	px, py := g.player.Position()
	return &World{
		Maze:      g.maze,
		PlayerX:   px,
		PlayerY:   py,
		PlayerDir: g.player.Direction(),
		Rand:      g.rng,
	}
}

// checkCollisions resolves player-ghost contact. A vulnerable ghost is
// sent home for points; any other contact ends the game.
func (g *Game) checkCollisions() {
	px, py := g.player.Position()
	radius := g.cfg.Maze.CellSize * g.cfg.Ghosts.CollisionRadius

	for _, gh := range g.ghosts {
		gx, gy := gh.Position()
		if g.maze.Distance(px, py, gx, gy) >= radius {
			continue
		}
		if gh.Vulnerable() {
			gh.Reset(g.maze)
			g.score += g.cfg.Scoring.Ghost
			continue
		}
		g.gameOver = true
		return
	}
}

// PowerLeft returns the remaining power-mode time.
func (g *Game) PowerLeft() time.Duration {
	return g.powerLeft
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:      g.score,
		Level:      g.level,
		Difficulty: g.label,
		GameOver:   g.gameOver,
		Paused:     g.paused,
	}
}
