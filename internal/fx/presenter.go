// Package fx renders session presentation requests in a terminal.
// A terminal has no mixer or particle system, so sounds become short HUD cues
// and visual effects become timed color and offset changes.
package fx

import (
	"strings"

	"github.com/vovakirdan/tilt-arcade/internal/session"
)

// Effect durations in seconds of game time.
const (
	cueDuration   = 0.8
	pulseDuration = 0.25
	shakeDuration = 0.3
)

// shakePattern is the per-frame view offset while shaking.
var shakePattern = [...][2]int{{1, 0}, {-1, 0}, {0, 1}, {1, -1}, {-1, 1}, {0, -1}}

// Event is one presentation request, kept when the event log is enabled.
type Event struct {
	Kind  string // splash, sound, hud or effect
	Value string
}

// Presenter implements session.Presenter for terminal games.
type Presenter struct {
	splash     session.Splash
	scoreText  string
	vitalsText string

	cue      string
	cueLeft  float64
	pulse    float64
	shake    float64
	shakeIdx int

	record bool
	events []Event
}

// Option configures a Presenter.
type Option func(*Presenter)

// WithEventLog makes the presenter keep every request for later inspection.
func WithEventLog() Option {
	return func(p *Presenter) { p.record = true }
}

// New returns a presenter showing no splash and an empty HUD.
func New(opts ...Option) *Presenter {
	p := &Presenter{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var _ session.Presenter = (*Presenter)(nil)

// ShowSplash replaces the current overlay.
func (p *Presenter) ShowSplash(s session.Splash) {
	p.splash = s
	p.log("splash", s.String())
}

// PlaySound shows a cue for the sound in the HUD.
func (p *Presenter) PlaySound(id string) {
	p.cue = "♪ " + strings.ToLower(id)
	p.cueLeft = cueDuration
	p.log("sound", id)
}

// UpdateHUD stores the texts drawn by DrawHUD.
func (p *Presenter) UpdateHUD(scoreText, vitalsText string) {
	p.scoreText = scoreText
	p.vitalsText = vitalsText
	p.log("hud", scoreText+" | "+vitalsText)
}

// TriggerEffect starts a pulse or shake. Unknown effects are recorded and ignored.
func (p *Presenter) TriggerEffect(id string) {
	switch id {
	case session.EffectPulse:
		p.pulse = pulseDuration
	case session.EffectShake:
		p.shake = shakeDuration
	}
	p.log("effect", id)
}

// Step runs effect countdowns forward by dt seconds.
func (p *Presenter) Step(dt float64) {
	dt = session.ClampDelta(dt)
	p.cueLeft = max(p.cueLeft-dt, 0)
	if p.cueLeft == 0 {
		p.cue = ""
	}
	p.pulse = max(p.pulse-dt, 0)
	p.shake = max(p.shake-dt, 0)
	if p.shake > 0 {
		p.shakeIdx = (p.shakeIdx + 1) % len(shakePattern)
	}
}

// Clear drops HUD text and running effects, keeping the splash.
func (p *Presenter) Clear() {
	p.scoreText, p.vitalsText = "", ""
	p.cue, p.cueLeft = "", 0
	p.pulse, p.shake, p.shakeIdx = 0, 0, 0
}

func (p *Presenter) log(kind, value string) {
	if p.record {
		p.events = append(p.events, Event{Kind: kind, Value: value})
	}
}

// Splash returns the current overlay.
func (p *Presenter) Splash() session.Splash { return p.splash }

// ScoreText returns the last score text.
func (p *Presenter) ScoreText() string { return p.scoreText }

// VitalsText returns the last lives or energy text.
func (p *Presenter) VitalsText() string { return p.vitalsText }

// Cue returns the sound cue being shown, or "".
func (p *Presenter) Cue() string { return p.cue }

// Pulsing reports whether a pulse effect is running.
func (p *Presenter) Pulsing() bool { return p.pulse > 0 }

// Shaking reports whether a shake effect is running.
func (p *Presenter) Shaking() bool { return p.shake > 0 }

// ShakeOffset returns the view offset for this frame.
func (p *Presenter) ShakeOffset() (dx, dy int) {
	if p.shake <= 0 {
		return 0, 0
	}
	o := shakePattern[p.shakeIdx]
	return o[0], o[1]
}

// Events returns the recorded requests.
func (p *Presenter) Events() []Event { return p.events }

// ResetEvents empties the event log.
func (p *Presenter) ResetEvents() { p.events = p.events[:0] }
