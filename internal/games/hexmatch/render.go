package hexmatch

import (
	"fmt"

	"github.com/vovakirdan/tui-hexmatch/internal/board"
	"github.com/vovakirdan/tui-hexmatch/internal/core"
	"github.com/vovakirdan/tui-hexmatch/internal/hex"
)

// Visual characters for rendering
const (
	StoneChar   = '●'
	BlockerChar = '▓'
	EmptyChar   = '·'
	GroundChar  = '░'
	BurstChar   = '✶'
)

const (
	hudHeight    = 2
	footerHeight = 1
	cellSpan     = 4 // Screen columns between neighbouring board columns
)

// cellOffset returns the screen offset of pos relative to the board origin.
// Hex columns are shifted down half a cell per column so that all six
// neighbours sit around the cell.
func cellOffset(geom board.Geometry, pos hex.Coord) (x, y int) {
	if geom.Name == board.SquareGeometry.Name {
		return pos.Q * cellSpan, pos.R * 2
	}
	return pos.Q * cellSpan, pos.Q + pos.R*2
}

// layout places the board on the screen.
type layout struct {
	originX, originY int
	frame            core.Rect // Border around the board, cursor marks included
}

func (g *Game) layout(screenW, screenH int) layout {
	positions := g.eng.Grid().Positions()
	minX, minY := 0, 0
	maxX, maxY := 0, 0
	for i, p := range positions {
		x, y := cellOffset(g.geom, p)
		if i == 0 {
			minX, maxX, minY, maxY = x, x, y, y
			continue
		}
		minX, maxX = core.Min(minX, x), core.Max(maxX, x)
		minY, maxY = core.Min(minY, y), core.Max(maxY, y)
	}

	width, height := maxX-minX+3, maxY-minY+1
	avail := screenH - hudHeight - footerHeight
	l := layout{
		originX: (screenW-width)/2 - minX + 1,
		originY: hudHeight + (avail-height)/2 - minY,
	}
	l.frame = core.NewRect(l.originX+minX-2, l.originY+minY-1, width+2, height+2)
	return l
}

// fits reports whether the framed board is inside the area between the
// HUD and the footer.
func (l layout) fits(screenW, screenH int) bool {
	area := core.NewRect(0, hudHeight, screenW, screenH-hudHeight-footerHeight)
	return area.Contains(l.frame.X, l.frame.Y) && area.Contains(l.frame.Right()-1, l.frame.Bottom()-1)
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.eng == nil {
		g.renderError(dst)
		return
	}

	l := g.layout(dst.Width(), dst.Height())
	if !l.fits(dst.Width(), dst.Height()) {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", core.ColorDefault)
		need := fmt.Sprintf("Need %dx%d", l.frame.W, l.frame.H+hudHeight+footerHeight)
		dst.DrawTextCentered(dst.Height()/2+1, need, core.ColorDefault)
		return
	}

	g.renderHUD(dst)
	dst.DrawBox(l.frame, core.ColorGray)
	g.renderBoard(dst, l)
	g.renderFooter(dst)
}

func (g *Game) renderError(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y-1, "Cannot start "+g.variant.Title, core.ColorBrightRed)
	if g.loadErr != nil {
		dst.DrawTextCentered(y+1, g.loadErr.Error(), core.ColorDefault)
	}
}

// renderHUD draws the score, moves and level name.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextColor(1, 0, g.variant.Title, core.ColorBrightWhite)

	levelText := "Level: " + g.level.Name
	if g.level.Name == "" {
		levelText = "Level: " + g.level.ID
	}
	dst.DrawTextCentered(0, levelText, core.ColorDefault)

	scoreText := fmt.Sprintf("Score: %d", int(g.shownScore))
	dst.DrawTextColor(dst.Width()-len(scoreText)-1, 0, scoreText, core.ColorBrightYellow)

	movesText := "Moves: ∞"
	if left := g.MovesLeft(); left >= 0 {
		movesText = fmt.Sprintf("Moves: %d/%d", left, g.moves)
	}
	info := fmt.Sprintf("%s  Colors: %d  Stones: %d", movesText, len(g.eng.Config().Palette), g.eng.Destroyed())
	dst.DrawText(1, 1, info)

	if g.halted {
		status := "Unsettled"
		dst.DrawTextColor(dst.Width()-len(status)-1, 1, status, core.ColorBrightRed)
	}
}

// renderBoard draws every cell with the cursor and selection.
func (g *Game) renderBoard(dst *core.Screen, l layout) {
	grid := g.eng.Grid()
	for _, pos := range grid.Positions() {
		dx, dy := cellOffset(g.geom, pos)
		x, y := l.originX+dx, l.originY+dy

		glyph, color := g.cellGlyph(pos)
		dst.SetColor(x, y, glyph, color)

		switch {
		case pos == g.cursor && g.selected:
			dst.SetColor(x-1, y, '<', core.ColorBrightYellow)
			dst.SetColor(x+1, y, '>', core.ColorBrightYellow)
		case pos == g.cursor:
			dst.SetColor(x-1, y, '[', core.ColorBrightWhite)
			dst.SetColor(x+1, y, ']', core.ColorBrightWhite)
		default:
			if ov, _ := grid.Layer(pos, board.LayerOverlay); ov != nil {
				dst.SetColor(x-1, y, '(', core.ColorCyan)
				dst.SetColor(x+1, y, ')', core.ColorCyan)
			}
		}
	}
}

// cellGlyph returns what the visual board shows at pos.
func (g *Game) cellGlyph(pos hex.Coord) (rune, core.Color) {
	if color, id, ok := g.view.stone(pos); ok {
		if color == board.BlockerColor {
			return BlockerChar, core.ColorGray
		}
		if g.view.moved[id] && g.play.progress() < 0.5 {
			return StoneChar, core.ColorWhite
		}
		return StoneChar, core.StoneColor(color)
	}
	if _, ok := g.view.bursts[pos]; ok {
		return BurstChar, core.ColorBrightWhite
	}
	if ground, _ := g.eng.Grid().Layer(pos, board.LayerGround); ground != nil {
		return GroundChar, core.ColorGray
	}
	return EmptyChar, core.ColorGray
}

// renderFooter draws the pause and game over banners.
func (g *Game) renderFooter(dst *core.Screen) {
	y := dst.Height() - 1
	switch {
	case g.gameOver:
		msg := fmt.Sprintf("GAME OVER  Score: %d  R to restart", g.eng.Score())
		dst.DrawTextCentered(y, msg, core.ColorBrightRed)
	case g.paused:
		dst.DrawTextCentered(y, "PAUSED  P to resume", core.ColorBrightYellow)
	case g.selected:
		dst.DrawTextCentered(y, "Pick a direction to swap", core.ColorDefault)
	}
}
