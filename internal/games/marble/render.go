package marble

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tilt-arcade/internal/core"
	"github.com/vovakirdan/tilt-arcade/internal/session"
)

const (
	cellW   = 2 // screen columns per maze cell
	hudRows = 1
)

// viewSize returns how many maze cells fit on screen.
func (g *Game) viewSize() (w, h float64) {
	return float64(g.runtime.ScreenW / cellW), float64(g.runtime.ScreenH - hudRows)
}

// cameraTarget returns the top-left maze cell the view should show. Mazes
// that fit are centered; larger ones keep the ball in the middle.
func (g *Game) cameraTarget() core.Vec {
	vw, vh := g.viewSize()
	axis := func(ball, view float64, size int) float64 {
		if float64(size) <= view {
			return (float64(size) - view) / 2
		}
		return core.ClampF(ball-view/2, -1, float64(size)-view+1)
	}
	return core.V(
		axis(g.ball.Pos.X, vw, g.level.Width),
		axis(g.ball.Pos.Y, vh, g.level.Height),
	)
}

// Render draws the maze, the ball, the HUD and any splash.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() < 24 || dst.Height() < 8 {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small", core.ColorBrightRed)
		return
	}

	dx, dy := g.fx.ShakeOffset()
	ox := int(math.Floor(g.camera.X))
	oy := int(math.Floor(g.camera.Y))
	viewW := dst.Width()/cellW + 1
	viewH := dst.Height() - hudRows

	for sy := range viewH {
		for sx := range viewW {
			wx, wy := ox+sx, oy+sy
			glyph, color := tileGlyph(g.level.At(wx, wy))
			g.drawCell(dst, sx*cellW+dx, sy+hudRows+dy, glyph, color)
		}
	}

	for _, p := range g.pearls {
		if p.Visible {
			x, y := p.Pos.Cell()
			g.drawCell(dst, (x-ox)*cellW+dx, y-oy+hudRows+dy, "()", core.ColorBrightCyan)
		}
	}

	if glyph, color, ok := g.ballGlyph(); ok {
		x, y := g.ball.Pos.Cell()
		g.drawCell(dst, (x-ox)*cellW+dx, y-oy+hudRows+dy, glyph, color)
	}

	g.fx.DrawHUD(dst, 0)
	g.fx.DrawSplash(dst, g.splashLines()...)
	if g.paused {
		dst.DrawTextCentered(dst.Height()/2, " PAUSED ", core.ColorBrightYellow)
	}
}

func (g *Game) drawCell(dst *core.Screen, x, y int, glyph string, c core.Color) {
	if y < hudRows {
		return
	}
	dst.DrawTextColored(x, y, glyph, c)
}

// tileGlyph draws floor as a dotted surface so holes read as gaps.
func tileGlyph(t Tile) (string, core.Color) {
	switch t {
	case TilePillar:
		return "██", core.ColorGray
	case TileCrate:
		return "▒▒", core.ColorOrange
	case TileFloor:
		return "· ", core.ColorDarkGray
	default:
		return "  ", core.ColorDefault
	}
}

// ballGlyph shades the ball by energy and shrinks it while falling.
func (g *Game) ballGlyph() (string, core.Color, bool) {
	color := core.ColorBrightWhite
	switch e := g.session.Energy(); {
	case e < 0.15:
		color = core.ColorDarkGray
	case e < 0.4:
		color = core.ColorGray
	case e < 0.7:
		color = core.ColorWhite
	}

	switch h := g.ball.Height; {
	case h > -1:
		return "()", color, true
	case h > -2.5:
		return "o ", color, true
	case h > -4:
		return ". ", color, true
	default:
		return "", color, false
	}
}

func (g *Game) splashLines() []string {
	lines := []string{g.level.Name}
	switch g.session.State() {
	case session.StateGameOver:
		lines = append(lines, fmt.Sprintf("Score: %d", g.session.Score()))
		switch g.session.EndReason() {
		case session.ReasonFellOut:
			lines = append(lines, "The marble fell")
		case session.ReasonEnergyDrained:
			lines = append(lines, "Out of energy")
		}
	case session.StateTapToPlay:
		if g.bestScore > 0 {
			lines = append(lines, fmt.Sprintf("Best: %d", g.bestScore))
		}
		lines = append(lines, "SPACE to start · arrows to tilt")
	}
	return lines
}
