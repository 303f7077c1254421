// Package marble provides the marble maze: tilt a ball through a maze,
// collect pearls to refill draining energy, and avoid bumping walls or
// rolling into holes.
package marble

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tilt-arcade/internal/config"
	"github.com/vovakirdan/tilt-arcade/internal/core"
	"github.com/vovakirdan/tilt-arcade/internal/fx"
	"github.com/vovakirdan/tilt-arcade/internal/registry"
	"github.com/vovakirdan/tilt-arcade/internal/session"
)

const gameID = "marble"

// Package-level settings applied by the CLI before games are created.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	levelsDir        string
	levelID          string
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLevelsDir loads mazes from dir instead of the built-in set.
func SetLevelsDir(dir string) {
	levelsDir = dir
}

// SetLevel selects a maze by ID. Unknown IDs fall back to the first maze.
func SetLevel(id string) {
	levelID = id
}

func init() {
	registry.Register(gameID, func() registry.Game {
		return New()
	})
}

type pearl struct {
	Pos     core.Vec
	Visible bool
}

// Game implements the marble maze.
type Game struct {
	cfg        config.MarbleConfig
	runtime    core.RuntimeConfig
	dt         float64
	difficulty *config.DifficultyManager
	logger     *log.Logger

	level   Level
	ball    Ball
	pearls  []pearl
	respawn *session.Scheduler

	session *session.Session
	fx      *fx.Presenter

	camera       core.Vec
	tilt         core.Vec
	tiltHold     core.Vec // seconds of tilt left per axis
	bumpCooldown float64

	paused    bool
	tick      uint64
	bestScore int
}

// New creates a new marble maze instance.
func New() *Game {
	return &Game{logger: log.New(io.Discard)}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return gameID }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Marble Maze" }

// SetLogger sets the logger used by the game and its session.
func (g *Game) SetLogger(l *log.Logger) {
	if l != nil {
		g.logger = l.WithPrefix(gameID)
	}
}

// SetBestScore sets the best score shown on the splash screen.
func (g *Game) SetBestScore(score int) { g.bestScore = score }

// Reset loads configuration and the selected maze and returns to TapToPlay.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.dt = runtime.DeltaTime()

	cfg, err := config.LoadMarble(configPath)
	if err != nil {
		g.logger.Warn("using default config", "error", err)
		cfg = config.DefaultMarbleConfig()
	}
	config.ApplyMarblePreset(&cfg, difficultyPreset)
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.level = g.pickLevel()

	g.fx = fx.New()
	g.respawn = session.NewScheduler()
	g.session = session.New(cfg.Session.Session(session.EnergyContinuous), g.fx,
		session.WithLogger(g.logger),
		session.WithTransitionHook(g.onTransition),
	)
	g.paused = false
	g.tick = 0
	g.resetBoard()
	g.camera = g.cameraTarget()
}

func (g *Game) pickLevel() Level {
	levels := BuiltinLevels()
	if levelsDir != "" {
		loaded, err := NewLoader(levelsDir).LoadAll()
		switch {
		case err != nil:
			g.logger.Warn("loading levels", "dir", levelsDir, "error", err)
		case len(loaded) == 0:
			g.logger.Warn("no levels found", "dir", levelsDir)
		default:
			levels = loaded
		}
	}
	for _, l := range levels {
		if l.ID == levelID {
			return l
		}
	}
	if levelID != "" {
		g.logger.Warn("unknown level", "id", levelID)
	}
	return levels[0]
}

// resetBoard puts the ball on the start cell and restores every pearl.
func (g *Game) resetBoard() {
	g.ball = Ball{Pos: g.level.Start}
	g.pearls = g.pearls[:0]
	for _, p := range g.level.Pearls {
		g.pearls = append(g.pearls, pearl{Pos: p, Visible: true})
	}
	g.respawn.Clear()
	g.tilt = core.Vec{}
	g.tiltHold = core.Vec{}
	g.bumpCooldown = 0
}

func (g *Game) onTransition(_, to session.State) {
	if to == session.StateTapToPlay {
		g.resetBoard()
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

	if in.Has(core.ActionTap) {
		g.session.PrimaryInput()
	}
	g.readTilt(in)

	g.respawn.Advance(g.dt)
	g.updateBall(g.dt)
	g.session.SetDecayRate(g.difficulty.Drain(g.cfg.Session.DecayRate, g.session.Score(), g.session.RunTime()))
	g.session.Tick(g.dt)
	g.fx.Step(g.dt)
	g.camera = g.camera.Lerp(g.cameraTarget(), g.cfg.Camera.FollowLerp)

	return core.StepResult{State: g.State()}
}

// readTilt latches arrow presses for TiltHold seconds so a held key,
// which terminals report as repeated presses, tilts continuously.
func (g *Game) readTilt(in core.InputFrame) {
	hold := g.cfg.Physics.TiltHold
	if in.Has(core.ActionLeft) {
		g.tilt.X, g.tiltHold.X = -1, hold
	}
	if in.Has(core.ActionRight) {
		g.tilt.X, g.tiltHold.X = 1, hold
	}
	if in.Has(core.ActionUp) {
		g.tilt.Y, g.tiltHold.Y = -1, hold
	}
	if in.Has(core.ActionDown) {
		g.tilt.Y, g.tiltHold.Y = 1, hold
	}

	g.tiltHold.X = max(g.tiltHold.X-g.dt, 0)
	g.tiltHold.Y = max(g.tiltHold.Y-g.dt, 0)
	if g.tiltHold.X == 0 {
		g.tilt.X = 0
	}
	if g.tiltHold.Y == 0 {
		g.tilt.Y = 0
	}
}

// collectPearls reports a favorable contact for each visible pearl under
// the ball and hides it until its respawn timer fires.
func (g *Game) collectPearls() {
	for i := range g.pearls {
		p := &g.pearls[i]
		if !p.Visible || g.ball.Pos.Sub(p.Pos).Len() > pearlRadius {
			continue
		}
		if !g.session.FavorableContact() {
			return
		}
		p.Visible = false
		g.respawn.After(g.cfg.Pearls.RespawnDelay, func() {
			g.pearls[i].Visible = true
		})
	}
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

// Level returns the maze being played.
func (g *Game) Level() Level { return g.level }
