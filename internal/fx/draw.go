package fx

import (
	"github.com/vovakirdan/tilt-arcade/internal/core"
	"github.com/vovakirdan/tilt-arcade/internal/session"
)

// DrawHUD draws the score, the sound cue and the vitals on row y.
func (p *Presenter) DrawHUD(dst *core.Screen, y int) {
	scoreColor := core.ColorBrightWhite
	if p.Pulsing() {
		scoreColor = core.ColorBrightYellow
	}
	vitalsColor := core.ColorBrightCyan
	if p.Shaking() {
		vitalsColor = core.ColorBrightRed
	}

	dst.DrawTextColored(1, y, p.scoreText, scoreColor)
	if p.cue != "" {
		dst.DrawTextCentered(y, p.cue, core.ColorMagenta)
	}
	if p.vitalsText != "" {
		x := dst.Width() - len([]rune(p.vitalsText)) - 1
		dst.DrawTextColored(x, y, p.vitalsText, vitalsColor)
	}
}

// DrawSplash draws the current overlay in a box centered on the screen,
// followed by any extra lines. It draws nothing when no splash is shown.
func (p *Presenter) DrawSplash(dst *core.Screen, lines ...string) {
	if p.splash == session.SplashNone {
		return
	}

	title := p.splash.String()
	width := len([]rune(title))
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	width += 6
	height := len(lines) + 4
	if len(lines) > 0 {
		height++
	}

	x := (dst.Width() - width) / 2
	y := (dst.Height() - height) / 2
	box := core.NewRect(x, y, width, height)
	dst.DrawRect(box, ' ')

	color := core.ColorBrightYellow
	if p.splash == session.SplashGameOver {
		color = core.ColorBrightRed
	}
	dst.DrawBox(box, color)
	dst.DrawTextCentered(y+2, title, color)
	for i, l := range lines {
		dst.DrawTextCentered(y+4+i, l, core.ColorWhite)
	}
}
