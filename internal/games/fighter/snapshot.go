package fighter

import "github.com/vovakirdan/tilt-arcade/internal/session"

// Snapshot captures game state for determinism testing.
type Snapshot struct {
	Tick      uint64
	Session   session.Snapshot
	Shapes    int
	Launched  int
	CrossX    int
	CrossY    int
	NextSpawn float64
	FirstX    float64 // position of the oldest live shape, 0 if none
	FirstY    float64
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:      g.tick,
		Session:   g.session.Snapshot(),
		Shapes:    len(g.shapes),
		Launched:  g.launched,
		CrossX:    g.crossX,
		CrossY:    g.crossY,
		NextSpawn: g.nextSpawn,
	}
	if len(g.shapes) > 0 {
		s.FirstX, s.FirstY = g.shapes[0].Pos.X, g.shapes[0].Pos.Y
	}
	return s
}
