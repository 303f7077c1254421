// Package session implements the game session state machine shared by the
// arcade's tap-to-play games: TapToPlay -> Playing -> GameOver -> TapToPlay.
//
// A Session owns the score, the player's lives or energy and the current
// phase of play. It is driven by a single game loop calling Tick once per
// frame, interleaved with input and contact events from the same goroutine.
// Everything it wants shown or heard goes out through a Presenter.
package session

// State is the phase of play.
type State int

const (
	StateTapToPlay State = iota // Waiting for the player to start
	StatePlaying                // A run is in progress
	StateGameOver               // Run ended, waiting for the reset timer
)

// String returns the snake_case name used in logs and storage.
func (s State) String() string {
	switch s {
	case StateTapToPlay:
		return "tap_to_play"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Splash selects the full-screen overlay shown outside of play.
type Splash int

const (
	SplashNone Splash = iota
	SplashTapToPlay
	SplashGameOver
)

// String returns the HUD caption for the splash.
func (s Splash) String() string {
	switch s {
	case SplashTapToPlay:
		return "-TAP TO PLAY-"
	case SplashGameOver:
		return "-GAME OVER-"
	default:
		return ""
	}
}

// LifeModel selects how the player's health is tracked.
type LifeModel int

const (
	LivesDiscrete    LifeModel = iota // Integer life counter
	EnergyContinuous                  // Energy in [0,1] that drains over time
)

// String returns the config name of the model.
func (m LifeModel) String() string {
	if m == EnergyContinuous {
		return "energy"
	}
	return "lives"
}

// EndReason records why the last run ended.
type EndReason int

const (
	ReasonNone EndReason = iota
	ReasonLivesExhausted
	ReasonEnergyDrained
	ReasonFellOut
)

// String returns the reason name stored with scores.
func (r EndReason) String() string {
	switch r {
	case ReasonLivesExhausted:
		return "lives_exhausted"
	case ReasonEnergyDrained:
		return "energy_drained"
	case ReasonFellOut:
		return "fell_out"
	default:
		return ""
	}
}

// Sound and effect identifiers sent to the Presenter.
const (
	SoundPowerup  = "Powerup"
	SoundBump     = "Bump"
	SoundGameOver = "GameOver"
	SoundReset    = "Reset"

	EffectPulse = "pulse"
	EffectShake = "shake"
)

// Presenter receives display and audio requests from a Session.
// Calls are fire-and-forget and must not call back into the Session.
type Presenter interface {
	ShowSplash(variant Splash)
	PlaySound(id string)
	UpdateHUD(scoreText, vitalsText string)
	TriggerEffect(id string)
}

type nopPresenter struct{}

func (nopPresenter) ShowSplash(Splash)        {}
func (nopPresenter) PlaySound(string)         {}
func (nopPresenter) UpdateHUD(string, string) {}
func (nopPresenter) TriggerEffect(string)     {}
