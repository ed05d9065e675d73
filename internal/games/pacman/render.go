package pacman

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// Glyphs for maze cells.
const (
	glyphWall  = '█'
	glyphDot   = '·'
	glyphPower = '●'
	glyphHouse = '░'
	glyphGhost = 'M'
	glyphShut  = 'O' // Player with the mouth closed
)

// Open-mouth player glyphs by facing; the gap points the way it moves.
var mouthGlyphs = [...]rune{
	DirNone:  'C',
	DirUp:    'U',
	DirDown:  'n',
	DirLeft:  'Ɔ',
	DirRight: 'C',
}

// Ghost pupils look the way the ghost moves.
var pupilGlyphs = [...]rune{
	DirNone:  '•',
	DirUp:    '^',
	DirDown:  'v',
	DirLeft:  '<',
	DirRight: '>',
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.maze == nil {
		return
	}

	g.renderHUD(dst)

	if g.tooSmall {
		need := fmt.Sprintf("Need %dx%d", g.maze.Width(), g.maze.Height()+hudHeight)
		g.renderOverlay(dst, "Window too small", need)
		return
	}

	g.renderMaze(dst)
	g.renderPlayer(dst)
	g.renderGhosts(dst)

	switch {
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Final Score: %d", g.score), "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the score line, the power timer and a separator.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(0, 0, fmt.Sprintf(" %s  Score: %d  Level: %d", g.Title(), g.score, g.level))

	if g.powerLeft > 0 {
		timer := fmt.Sprintf("Power: %.1fs ", g.powerLeft.Seconds())
		dst.DrawTextColor(dst.Width()-utf8.RuneCountInString(timer), 0, timer, core.ColorGreen)
	}

	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// cellOrigin returns the screen position of the first column of maze cell p.
func (g *Game) cellOrigin(p Point) (int, int) {
	return g.offsetX + p.X*g.cellW, g.offsetY + p.Y
}

func (g *Game) renderMaze(dst *core.Screen) {
	for y := range g.maze.Height() {
		for x := range g.maze.Width() {
			p := Point{X: x, Y: y}
			sx, sy := g.cellOrigin(p)

			switch g.maze.At(p) {
			case CellWall:
				for i := range g.cellW {
					dst.SetCell(sx+i, sy, glyphWall, core.ColorBlue)
				}
			case CellDot:
				dst.SetCell(sx, sy, glyphDot, core.ColorWhite)
			case CellPower:
				dst.SetCell(sx, sy, glyphPower, core.ColorYellow)
			default:
				if g.maze.InHouse(p) {
					dst.SetCell(sx, sy, glyphHouse, core.ColorGray)
				}
			}
		}
	}
}

func (g *Game) renderPlayer(dst *core.Screen) {
	sx, sy := g.cellOrigin(g.maze.CellAt(g.player.Position()))
	dst.SetCell(sx, sy, g.playerGlyph(), core.ColorYellow)
}

// playerGlyph picks the sprite for the current facing and mouth opening.
func (g *Game) playerGlyph() rune {
	if g.player.Mouth() < MaxMouth/2 {
		return glyphShut
	}
	d := g.player.Direction()
	if !d.valid() {
		d = DirNone
	}
	return mouthGlyphs[d]
}

func (g *Game) renderGhosts(dst *core.Screen) {
	for _, gh := range g.ghosts {
		sx, sy := g.cellOrigin(gh.Cell(g.maze))
		dst.SetCell(sx, sy, glyphGhost, gh.Color())

		if g.cellW > 1 {
			d := gh.Direction()
			if !d.valid() {
				d = DirNone
			}
			dst.SetCell(sx+1, sy, pupilGlyphs[d], core.ColorWhite)
		}
	}
}

// renderOverlay draws a boxed message in the middle of the screen.
func (g *Game) renderOverlay(dst *core.Screen, lines ...string) {
	width := 0
	for _, line := range lines {
		width = max(width, utf8.RuneCountInString(line))
	}

	box := core.NewRect(0, 0, dst.Width(), dst.Height()).Centered(width+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawTextCentered(box.Y+1+i, line)
	}
}
