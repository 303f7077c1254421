// Package fighter provides geometry fighter: shapes are tossed up from the
// bottom of the screen and the player taps the good ones while leaving the
// bad ones alone.
package fighter

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tilt-arcade/internal/config"
	"github.com/vovakirdan/tilt-arcade/internal/core"
	"github.com/vovakirdan/tilt-arcade/internal/fx"
	"github.com/vovakirdan/tilt-arcade/internal/registry"
	"github.com/vovakirdan/tilt-arcade/internal/session"
)

const (
	gameID  = "fighter"
	hudRows = 1
)

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

func init() {
	registry.Register(gameID, func() registry.Game {
		return New()
	})
}

// Game implements geometry fighter.
type Game struct {
	cfg        config.FighterConfig
	runtime    core.RuntimeConfig
	dt         float64
	rng        *rand.Rand
	difficulty *config.DifficultyManager
	logger     *log.Logger

	session *session.Session
	fx      *fx.Presenter

	shapes    []Shape
	bursts    []burst
	crossX    int
	crossY    int
	nextSpawn float64 // seconds until the next launch
	launched  int

	paused    bool
	tick      uint64
	bestScore int
}

// New creates a new geometry fighter instance.
func New() *Game {
	return &Game{logger: log.New(io.Discard)}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return gameID }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Geometry Fighter" }

// SetLogger sets the logger used by the game and its session.
func (g *Game) SetLogger(l *log.Logger) {
	if l != nil {
		g.logger = l.WithPrefix(gameID)
	}
}

// SetBestScore sets the best score shown on the splash screen.
func (g *Game) SetBestScore(score int) { g.bestScore = score }

// Reset loads configuration, reseeds the RNG and returns to TapToPlay.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.dt = runtime.DeltaTime()
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	cfg, err := config.LoadFighter(configPath)
	if err != nil {
		g.logger.Warn("using default config", "error", err)
		cfg = config.DefaultFighterConfig()
	}
	config.ApplyFighterPreset(&cfg, difficultyPreset)
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.fx = fx.New()
	g.session = session.New(cfg.Session.Session(session.LivesDiscrete), g.fx,
		session.WithLogger(g.logger),
		session.WithTransitionHook(g.onTransition),
	)
	g.paused = false
	g.tick = 0
	g.launched = 0
	g.clearField()
}

func (g *Game) clearField() {
	g.shapes = g.shapes[:0]
	g.bursts = g.bursts[:0]
	g.crossX = g.runtime.ScreenW / 2
	g.crossY = (g.runtime.ScreenH + hudRows) / 2
	g.nextSpawn = 0.5
}

func (g *Game) onTransition(_, to session.State) {
	if to != session.StateGameOver {
		g.clearField()
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) && g.session.State() == session.StatePlaying {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}
	g.tick++

	g.moveCrosshair(in)
	if in.Has(core.ActionTap) {
		switch g.session.State() {
		case session.StateTapToPlay:
			g.session.PrimaryInput()
		case session.StatePlaying:
			g.shoot()
		}
	}

	if g.session.State() == session.StatePlaying {
		g.spawn(g.dt)
	}
	g.updateShapes(g.dt)
	g.session.Tick(g.dt)
	g.fx.Step(g.dt)

	return core.StepResult{State: g.State()}
}

func (g *Game) moveCrosshair(in core.InputFrame) {
	step := max(g.cfg.Crosshair.Step, 1)
	if in.Has(core.ActionLeft) {
		g.crossX -= step * 2
	}
	if in.Has(core.ActionRight) {
		g.crossX += step * 2
	}
	if in.Has(core.ActionUp) {
		g.crossY -= step
	}
	if in.Has(core.ActionDown) {
		g.crossY += step
	}
	g.crossX = min(max(g.crossX, 0), g.runtime.ScreenW-1)
	g.crossY = min(max(g.crossY, hudRows), g.runtime.ScreenH-1)
}

// spawn launches a shape whenever the spawn interval elapses.
func (g *Game) spawn(dt float64) {
	g.nextSpawn -= dt
	if g.nextSpawn > 0 {
		return
	}
	score, elapsed := g.session.Score(), g.session.RunTime()
	g.nextSpawn += g.difficulty.Interval(g.cfg.Spawn.Interval, score, elapsed)
	if g.nextSpawn <= 0 {
		g.nextSpawn = g.dt
	}
	if len(g.shapes) >= g.cfg.Spawn.MaxShapes {
		return
	}
	g.shapes = append(g.shapes, g.spawnShape(g.rng, g.difficulty.Speed(1, score, elapsed)))
	g.launched++
}

// shoot taps the shape under the crosshair.
func (g *Game) shoot() {
	i := g.shapeAt(g.crosshair())
	if i < 0 {
		return
	}
	s := g.shapes[i]
	g.shapes = append(g.shapes[:i], g.shapes[i+1:]...)
	g.bursts = append(g.bursts, burst{Pos: s.Pos, Left: g.cfg.Physics.BurstLength, Color: s.Color})

	g.logger.Debug("shape tapped", "kind", s.Kind, "bad", s.Bad)
	if s.Bad {
		g.session.UnfavorableContact()
	} else {
		g.session.FavorableContact()
	}
}

func (g *Game) crosshair() core.Vec {
	return core.V(float64(g.crossX)+0.5, float64(g.crossY)+0.5)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := g.session.State()
	return core.GameState{
		Phase:     st.String(),
		Score:     g.session.Score(),
		GameOver:  st == session.StateGameOver,
		Paused:    g.paused,
		RunTime:   g.session.RunTime(),
		EndReason: g.session.EndReason().String(),
	}
}

// Session exposes the session driving this game.
func (g *Game) Session() *session.Session { return g.session }
