package fighter

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tilt-arcade/internal/core"
)

// ShapeKind is one of the eight launchable shapes.
type ShapeKind int

const (
	ShapeBox ShapeKind = iota
	ShapeSphere
	ShapePyramid
	ShapeTorus
	ShapeCapsule
	ShapeCylinder
	ShapeCone
	ShapeTube
	shapeKinds
)

var shapeNames = [shapeKinds]string{
	"box", "sphere", "pyramid", "torus", "capsule", "cylinder", "cone", "tube",
}

var shapeGlyphs = [shapeKinds]rune{'■', '●', '▲', '◎', '◍', '▮', '◭', '◘'}

// String returns the shape name.
func (k ShapeKind) String() string {
	if k < 0 || k >= shapeKinds {
		return "unknown"
	}
	return shapeNames[k]
}

// Glyph returns the rune drawn for the shape.
func (k ShapeKind) Glyph() rune {
	if k < 0 || k >= shapeKinds {
		return '?'
	}
	return shapeGlyphs[k]
}

// goodColors are picked at random for good shapes; bad shapes are always red.
var goodColors = []core.Color{
	core.ColorGreen, core.ColorCyan, core.ColorYellow,
	core.ColorMagenta, core.ColorBlue, core.ColorWhite,
}

// Shape is a launched object. Y grows downwards, as on screen.
type Shape struct {
	Kind  ShapeKind
	Bad   bool
	Pos   core.Vec
	Vel   core.Vec
	Color core.Color
}

// burst is a short explosion left where a shape was tapped.
type burst struct {
	Pos   core.Vec
	Left  float64
	Color core.Color
}

var burstDirs = [...]core.Vec{
	{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1},
	{X: 0.7, Y: 0.7}, {X: -0.7, Y: 0.7}, {X: 0.7, Y: -0.7}, {X: -0.7, Y: -0.7},
}

// spawnShape launches a random shape from the bottom edge. speedScale
// multiplies the launch speed, capped so the shape peaks on screen.
func (g *Game) spawnShape(rng *rand.Rand, speedScale float64) Shape {
	p := g.cfg.Physics
	w, h := float64(g.runtime.ScreenW), float64(g.runtime.ScreenH)

	launch := p.LaunchMin + rng.Float64()*(p.LaunchMax-p.LaunchMin)
	launch *= speedScale
	if p.Gravity > 0 {
		launch = min(launch, math.Sqrt(2*p.Gravity*(h-hudRows-1)))
	}

	x := 2 + rng.Float64()*max(w-4, 1)
	drift := (rng.Float64()*2 - 1) * p.Drift
	if x < w/4 {
		drift = math.Abs(drift)
	} else if x > 3*w/4 {
		drift = -math.Abs(drift)
	}

	s := Shape{
		Kind: ShapeKind(rng.Intn(int(shapeKinds))),
		Bad:  rng.Float64() < g.cfg.Spawn.BadRatio,
		Pos:  core.V(x, h),
		Vel:  core.V(drift, -launch),
	}
	if s.Bad {
		s.Color = core.ColorBrightRed
	} else {
		s.Color = goodColors[rng.Intn(len(goodColors))]
	}
	return s
}

// updateShapes moves shapes under gravity and drops those that fell
// back below the screen.
func (g *Game) updateShapes(dt float64) {
	h := float64(g.runtime.ScreenH)
	kept := g.shapes[:0]
	for _, s := range g.shapes {
		s.Vel.Y += g.cfg.Physics.Gravity * dt
		s.Pos = s.Pos.Add(s.Vel.Scale(dt))
		if s.Vel.Y > 0 && s.Pos.Y > h+1 {
			continue
		}
		kept = append(kept, s)
	}
	g.shapes = kept

	bursts := g.bursts[:0]
	for _, b := range g.bursts {
		b.Left -= dt
		if b.Left > 0 {
			bursts = append(bursts, b)
		}
	}
	g.bursts = bursts
}

// shapeAt returns the index of the shape closest to the crosshair within
// the hit radius, or -1. Columns count half as much as rows since
// terminal cells are twice as tall as wide.
func (g *Game) shapeAt(cross core.Vec) int {
	best, bestDist := -1, g.cfg.Physics.HitRadius
	for i, s := range g.shapes {
		d := s.Pos.Sub(cross)
		dist := math.Hypot(d.X/2, d.Y)
		if dist <= bestDist {
			best, bestDist = i, dist
		}
	}
	return best
}
