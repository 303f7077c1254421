package session

import (
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"
)

// energyEpsilon absorbs float drift so accumulated decay lands exactly on zero.
const energyEpsilon = 1e-9

// Session is the game session state machine. The zero value is not usable;
// construct with New. A Session is not safe for concurrent use.
type Session struct {
	cfg       Config
	presenter Presenter
	logger    *log.Logger
	onChange  func(from, to State)
	timers    *Scheduler

	state      State
	score      int
	lives      int
	energy     float64
	reason     EndReason
	runStart   float64
	runTime    float64
	resetTimer TimerID
}

// Option customizes a Session.
type Option func(*Session)

// WithLogger sets the logger used for transition debug logs.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithTransitionHook registers fn to run after every state change.
// Games use it to reposition actors when a run starts or ends.
func WithTransitionHook(fn func(from, to State)) Option {
	return func(s *Session) {
		s.onChange = fn
	}
}

// New creates a session in TapToPlay and shows the tap-to-play splash.
// A nil presenter discards all requests.
func New(cfg Config, p Presenter, opts ...Option) *Session {
	if p == nil {
		p = nopPresenter{}
	}
	s := &Session{
		cfg:       cfg.Validate(),
		presenter: p,
		logger:    log.New(io.Discard),
		timers:    NewScheduler(),
		state:     StateTapToPlay,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.refill()
	s.presenter.ShowSplash(SplashTapToPlay)
	s.presenter.PlaySound(SoundReset)
	return s
}

// Tick advances the session by one frame of dt seconds. Negative, NaN and
// infinite deltas count as zero. Due timers fire first; then, while playing,
// energy decays and the HUD is refreshed.
func (s *Session) Tick(dt float64) {
	dt = ClampDelta(dt)
	s.timers.Advance(dt)

	if s.state != StatePlaying {
		return
	}

	s.runTime = s.timers.Now() - s.runStart
	if s.cfg.Model == EnergyContinuous {
		s.energy = clampEnergy(s.energy - s.cfg.DecayRate*dt)
		if s.energy <= 0 {
			s.endRun(ReasonEnergyDrained)
			return
		}
	}
	s.refreshHUD()
}

// PrimaryInput handles a tap or touch. It starts a new run from TapToPlay
// and is ignored in every other state. It reports whether a run started.
func (s *Session) PrimaryInput() bool {
	if s.state != StateTapToPlay {
		return false
	}

	s.timers.Cancel(s.resetTimer)
	s.resetTimer = 0
	s.score = 0
	s.refill()
	s.reason = ReasonNone
	s.runStart = s.timers.Now()
	s.runTime = 0

	s.transition(StatePlaying)
	s.presenter.ShowSplash(SplashNone)
	s.refreshHUD()
	return true
}

// FavorableContact scores a point and restores full health.
// It is a no-op outside of play and reports whether it applied.
func (s *Session) FavorableContact() bool {
	if s.state != StatePlaying {
		return false
	}

	s.score++
	s.refill()
	s.presenter.PlaySound(SoundPowerup)
	s.presenter.TriggerEffect(EffectPulse)
	s.refreshHUD()
	return true
}

// UnfavorableContact costs a life (or BumpDrain energy) and ends the run
// when nothing is left. It is a no-op outside of play.
func (s *Session) UnfavorableContact() bool {
	if s.state != StatePlaying {
		return false
	}

	s.presenter.PlaySound(SoundBump)
	s.presenter.TriggerEffect(EffectShake)

	switch s.cfg.Model {
	case EnergyContinuous:
		s.energy = clampEnergy(s.energy - s.cfg.BumpDrain)
		if s.energy <= 0 {
			s.endRun(ReasonEnergyDrained)
			return true
		}
	default:
		s.lives = max(s.lives-1, 0)
		if s.lives <= 0 {
			s.endRun(ReasonLivesExhausted)
			return true
		}
	}
	s.refreshHUD()
	return true
}

// CheckOutOfBounds ends the run when y is below the configured fall
// threshold. It reports whether the run ended.
func (s *Session) CheckOutOfBounds(y float64) bool {
	if s.state != StatePlaying || !(y < s.cfg.FallThreshold) {
		return false
	}
	s.endRun(ReasonFellOut)
	return true
}

// Reset abandons any run or countdown and returns to TapToPlay with a zero score.
func (s *Session) Reset() {
	s.timers.Cancel(s.resetTimer)
	s.resetTimer = 0
	s.score = 0
	s.refill()
	s.reason = ReasonNone
	s.runTime = 0
	if s.state != StateTapToPlay {
		s.returnToTitle()
	}
}

// SetDecayRate changes the energy lost per second from the next Tick on.
// Games use it to speed up the drain as the run gets harder.
func (s *Session) SetDecayRate(rate float64) {
	s.cfg.DecayRate = nonNegative(rate)
}

func (s *Session) endRun(reason EndReason) {
	s.reason = reason
	s.runTime = s.timers.Now() - s.runStart
	s.refreshHUD()

	s.transition(StateGameOver)
	s.presenter.ShowSplash(SplashGameOver)
	s.presenter.PlaySound(SoundGameOver)
	s.resetTimer = s.timers.After(s.cfg.GameOverDelay, func() {
		s.resetTimer = 0
		s.returnToTitle()
	})
}

func (s *Session) returnToTitle() {
	s.transition(StateTapToPlay)
	s.presenter.ShowSplash(SplashTapToPlay)
	s.presenter.PlaySound(SoundReset)
}

func (s *Session) transition(to State) {
	from := s.state
	s.state = to
	s.logger.Debug("session transition",
		"from", from,
		"to", to,
		"score", s.score,
		"vitals", s.Vitals(),
		"reason", s.reason,
	)
	if s.onChange != nil {
		s.onChange(from, to)
	}
}

func (s *Session) refill() {
	s.lives = s.cfg.MaxLives
	s.energy = 1
}

func (s *Session) refreshHUD() {
	s.presenter.UpdateHUD(fmt.Sprintf("Score: %d", s.score), s.Vitals())
}

func clampEnergy(e float64) float64 {
	if math.IsNaN(e) || e < energyEpsilon {
		return 0
	}
	return min(e, 1)
}

// State returns the current phase of play.
func (s *Session) State() State { return s.state }

// Score returns the score of the current or last run.
func (s *Session) Score() int { return s.score }

// Lives returns the remaining lives (LivesDiscrete).
func (s *Session) Lives() int { return s.lives }

// Energy returns the remaining energy in [0,1] (EnergyContinuous).
func (s *Session) Energy() float64 { return s.energy }

// Config returns the validated configuration.
func (s *Session) Config() Config { return s.cfg }

// EndReason returns why the last run ended, or ReasonNone.
func (s *Session) EndReason() EndReason { return s.reason }

// Clock returns the total seconds of tick time seen by the session.
func (s *Session) Clock() float64 { return s.timers.Now() }

// RunTime returns the seconds spent in the current or last run.
func (s *Session) RunTime() float64 { return s.runTime }

// PendingTimers returns how many scheduled callbacks are outstanding.
func (s *Session) PendingTimers() int { return s.timers.Pending() }

// Health returns lives or energy normalized to [0,1].
func (s *Session) Health() float64 {
	if s.cfg.Model == EnergyContinuous {
		return s.energy
	}
	return float64(s.lives) / float64(s.cfg.MaxLives)
}

// Vitals returns the HUD text for the player's health.
func (s *Session) Vitals() string {
	if s.cfg.Model == EnergyContinuous {
		return fmt.Sprintf("Energy: %d%%", int(math.Round(s.energy*100)))
	}
	return fmt.Sprintf("Lives: %d", s.lives)
}

// Snapshot captures the session state for determinism checks.
type Snapshot struct {
	State   State
	Score   int
	Lives   int
	Energy  float64
	Clock   float64
	RunTime float64
	Reason  EndReason
	Pending int
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		State:   s.state,
		Score:   s.score,
		Lives:   s.lives,
		Energy:  s.energy,
		Clock:   s.timers.Now(),
		RunTime: s.runTime,
		Reason:  s.reason,
		Pending: s.timers.Pending(),
	}
}
