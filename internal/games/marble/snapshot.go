package marble

import "github.com/vovakirdan/tilt-arcade/internal/session"

// Snapshot captures game state for determinism testing.
type Snapshot struct {
	Tick    uint64
	Session session.Snapshot
	BallX   float64
	BallY   float64
	Height  float64
	Falling bool
	Pearls  int // visible pearls
	CameraX float64
	CameraY float64
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	visible := 0
	for _, p := range g.pearls {
		if p.Visible {
			visible++
		}
	}
	return Snapshot{
		Tick:    g.tick,
		Session: g.session.Snapshot(),
		BallX:   g.ball.Pos.X,
		BallY:   g.ball.Pos.Y,
		Height:  g.ball.Height,
		Falling: g.ball.Falling,
		Pearls:  visible,
		CameraX: g.camera.X,
		CameraY: g.camera.Y,
	}
}
