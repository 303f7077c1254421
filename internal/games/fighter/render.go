package fighter

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tilt-arcade/internal/core"
	"github.com/vovakirdan/tilt-arcade/internal/session"
)

// Render draws shapes, explosions, the crosshair, the HUD and any splash.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() < 24 || dst.Height() < 8 {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small", core.ColorBrightRed)
		return
	}
	dx, dy := g.fx.ShakeOffset()

	for _, b := range g.bursts {
		spread := 1 + 3*(1-b.Left/max(g.cfg.Physics.BurstLength, 1e-9))
		for _, d := range burstDirs {
			p := b.Pos.Add(core.V(d.X*2, d.Y).Scale(spread))
			x, y := p.Cell()
			g.plot(dst, x+dx, y+dy, '*', b.Color)
		}
	}

	for _, s := range g.shapes {
		x, y := s.Pos.Cell()
		g.plot(dst, x+dx, y+dy, s.Kind.Glyph(), s.Color)
	}

	if g.session.State() == session.StatePlaying {
		cx, cy := g.crossX+dx, g.crossY+dy
		g.plot(dst, cx-1, cy, '[', core.ColorBrightWhite)
		g.plot(dst, cx+1, cy, ']', core.ColorBrightWhite)
		if dst.Get(cx, cy) == ' ' {
			g.plot(dst, cx, cy, '+', core.ColorBrightWhite)
		}
	}

	g.fx.DrawHUD(dst, 0)
	g.fx.DrawSplash(dst, g.splashLines()...)
	if g.paused {
		dst.DrawTextCentered(dst.Height()/2, " PAUSED ", core.ColorBrightYellow)
	}
}

func (g *Game) plot(dst *core.Screen, x, y int, r rune, c core.Color) {
	if y < hudRows {
		return
	}
	dst.SetCell(x, y, r, c)
}

func (g *Game) splashLines() []string {
	switch g.session.State() {
	case session.StateGameOver:
		return []string{
			fmt.Sprintf("Score: %d", g.session.Score()),
			fmt.Sprintf("Survived %ds", int(math.Round(g.session.RunTime()))),
		}
	case session.StateTapToPlay:
		lines := []string{g.Title()}
		if g.bestScore > 0 {
			lines = append(lines, fmt.Sprintf("Best: %d", g.bestScore))
		}
		return append(lines, "Tap good shapes, avoid red ones", "arrows aim · SPACE taps")
	}
	return nil
}
