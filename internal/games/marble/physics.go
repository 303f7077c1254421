package marble

import (
	"math"

	"github.com/vovakirdan/tilt-arcade/internal/core"
	"github.com/vovakirdan/tilt-arcade/internal/session"
)

const (
	pearlRadius = 0.7
	// bumpSpeed is the impact speed below which touching a wall is resting
	// against it rather than a bump.
	bumpSpeed = 1.0
	// subStep caps how far the ball moves per collision check.
	subStep = 0.4
)

// Ball is the player marble. Height is 0 on the maze floor and negative
// once it has dropped off.
type Ball struct {
	Pos     core.Vec
	Vel     core.Vec
	Height  float64
	VZ      float64
	Falling bool
}

func (g *Game) updateBall(dt float64) {
	if g.ball.Falling {
		g.ball.VZ -= g.cfg.Physics.Gravity * dt
		g.ball.Height += g.ball.VZ * dt
		g.ball.Pos = g.ball.Pos.Add(g.ball.Vel.Scale(dt))
		g.session.CheckOutOfBounds(g.ball.Height)
		return
	}
	if g.session.State() != session.StatePlaying {
		return
	}

	p := g.cfg.Physics
	vel := g.ball.Vel.Add(g.tilt.Scale(p.TiltForce * dt))
	vel = vel.Scale(max(0, 1-p.Friction*dt))
	vel = vel.Limit(g.difficulty.Speed(p.MaxSpeed, g.session.Score(), g.session.RunTime()))
	g.ball.Vel = vel

	impact := g.moveBall(dt)
	g.bumpCooldown = max(g.bumpCooldown-dt, 0)
	if impact >= bumpSpeed && g.bumpCooldown == 0 {
		g.bumpCooldown = p.BumpCooldown
		g.session.UnfavorableContact()
		if g.session.State() != session.StatePlaying {
			return
		}
	}

	g.collectPearls()

	if !g.level.Supports(g.ball.Pos) {
		g.ball.Falling = true
	}
	g.session.CheckOutOfBounds(g.ball.Height)
}

// moveBall advances the ball through the maze, bouncing off solid tiles
// one axis at a time. It returns the fastest impact speed, or 0.
func (g *Game) moveBall(dt float64) float64 {
	b := &g.ball
	steps := max(1, int(math.Ceil(b.Vel.Len()*dt/subStep)))
	h := dt / float64(steps)
	bounce := g.cfg.Physics.Bounce

	var impact float64
	for range steps {
		nx := b.Pos.X + b.Vel.X*h
		if g.solidAt(nx, b.Pos.Y) {
			impact = max(impact, math.Abs(b.Vel.X))
			b.Vel.X = -b.Vel.X * bounce
		} else {
			b.Pos.X = nx
		}

		ny := b.Pos.Y + b.Vel.Y*h
		if g.solidAt(b.Pos.X, ny) {
			impact = max(impact, math.Abs(b.Vel.Y))
			b.Vel.Y = -b.Vel.Y * bounce
		} else {
			b.Pos.Y = ny
		}
	}
	return impact
}

func (g *Game) solidAt(x, y float64) bool {
	cx, cy := core.V(x, y).Cell()
	return g.level.At(cx, cy).Solid()
}
