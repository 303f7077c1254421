package session

import (
	"math"
	"strings"
	"testing"
)

type event struct {
	kind string
	arg  string
}

type recorder struct {
	events []event
	score  string
	vitals string
}

func (r *recorder) ShowSplash(s Splash) { r.events = append(r.events, event{"splash", s.String()}) }
func (r *recorder) PlaySound(id string) { r.events = append(r.events, event{"sound", id}) }
func (r *recorder) TriggerEffect(id string) {
	r.events = append(r.events, event{"effect", id})
}
func (r *recorder) UpdateHUD(score, vitals string) {
	r.score, r.vitals = score, vitals
}

func (r *recorder) has(kind, arg string) bool {
	for _, e := range r.events {
		if e.kind == kind && e.arg == arg {
			return true
		}
	}
	return false
}

func (r *recorder) reset() { r.events = nil }

func tickFor(s *Session, seconds, dt float64) {
	for n := int(math.Round(seconds / dt)); n > 0; n-- {
		s.Tick(dt)
	}
}

func TestNewStartsAtTapToPlay(t *testing.T) {
	rec := &recorder{}
	s := New(DefaultLivesConfig(), rec)

	if s.State() != StateTapToPlay {
		t.Fatalf("initial state = %v, want tap_to_play", s.State())
	}
	if !rec.has("splash", SplashTapToPlay.String()) {
		t.Error("expected tap-to-play splash on construction")
	}
	if s.Lives() != 3 || s.Score() != 0 {
		t.Errorf("lives=%d score=%d, want 3 and 0", s.Lives(), s.Score())
	}
}

func TestExampleTrace(t *testing.T) {
	rec := &recorder{}
	s := New(DefaultLivesConfig(), rec)

	if !s.PrimaryInput() {
		t.Fatal("primary input should start a run")
	}
	if s.State() != StatePlaying || s.Score() != 0 || s.Lives() != 3 {
		t.Fatalf("after start: state=%v score=%d lives=%d", s.State(), s.Score(), s.Lives())
	}

	s.FavorableContact()
	if s.Score() != 1 || s.Lives() != 3 {
		t.Fatalf("after favorable: score=%d lives=%d", s.Score(), s.Lives())
	}

	for range 3 {
		s.UnfavorableContact()
	}
	if s.State() != StateGameOver || s.Lives() != 0 {
		t.Fatalf("after 3 bumps: state=%v lives=%d", s.State(), s.Lives())
	}
	if s.EndReason() != ReasonLivesExhausted {
		t.Errorf("end reason = %v", s.EndReason())
	}

	tickFor(s, 5, 1.0/60)
	if s.State() != StateTapToPlay {
		t.Fatalf("after 5s: state=%v, want tap_to_play", s.State())
	}
	if !rec.has("sound", SoundReset) {
		t.Error("expected reset sound")
	}
}

func TestStartResetsRun(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"lives", DefaultLivesConfig()},
		{"energy", DefaultEnergyConfig()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			s := New(tt.cfg, rec)
			s.PrimaryInput()
			s.FavorableContact()
			s.FavorableContact()
			s.UnfavorableContact()
			s.CheckOutOfBounds(tt.cfg.FallThreshold - 1)
			tickFor(s, tt.cfg.GameOverDelay, 0.1)
			if s.State() != StateTapToPlay {
				t.Fatalf("state = %v, want tap_to_play", s.State())
			}

			rec.reset()
			s.PrimaryInput()
			if s.Score() != 0 {
				t.Errorf("score = %d, want 0", s.Score())
			}
			if s.Lives() != s.Config().MaxLives || s.Energy() != 1 {
				t.Errorf("lives=%d energy=%v, want full", s.Lives(), s.Energy())
			}
			if s.EndReason() != ReasonNone {
				t.Errorf("end reason = %v, want none", s.EndReason())
			}
			if !rec.has("splash", SplashNone.String()) {
				t.Error("expected splash to be hidden")
			}
		})
	}
}

func TestBumpsToGameOver(t *testing.T) {
	for _, lives := range []int{1, 2, 3, 7} {
		cfg := DefaultLivesConfig()
		cfg.MaxLives = lives
		s := New(cfg, nil)
		s.PrimaryInput()

		for i := 1; i <= lives; i++ {
			s.UnfavorableContact()
			wantOver := i == lives
			if (s.State() == StateGameOver) != wantOver {
				t.Fatalf("lives=%d bump %d: state=%v", lives, i, s.State())
			}
		}
		if s.Lives() != 0 {
			t.Errorf("lives=%d: remaining %d, want 0", lives, s.Lives())
		}
	}
}

func TestEnergyDecaysToGameOver(t *testing.T) {
	tests := []struct {
		name  string
		rate  float64
		dt    float64
		ticks int
	}{
		{"60fps default", 0.06, 1.0 / 60, 1000},
		{"fast decay", 0.5, 0.1, 20},
		{"single tick", 1, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultEnergyConfig()
			cfg.DecayRate = tt.rate
			rec := &recorder{}
			s := New(cfg, rec)
			s.PrimaryInput()

			for i := 1; i < tt.ticks; i++ {
				s.Tick(tt.dt)
				if s.State() != StatePlaying {
					t.Fatalf("ended early at tick %d, energy %v", i, s.Energy())
				}
			}
			s.Tick(tt.dt)

			if s.State() != StateGameOver {
				t.Fatalf("state = %v, energy = %v", s.State(), s.Energy())
			}
			if s.Energy() != 0 {
				t.Errorf("energy = %v, want 0", s.Energy())
			}
			if s.EndReason() != ReasonEnergyDrained {
				t.Errorf("reason = %v", s.EndReason())
			}
			if !rec.has("sound", SoundGameOver) || !rec.has("splash", SplashGameOver.String()) {
				t.Error("expected game over splash and sound")
			}
		})
	}
}

func TestFavorableOnlyWhilePlaying(t *testing.T) {
	rec := &recorder{}
	s := New(DefaultEnergyConfig(), rec)

	if s.FavorableContact() {
		t.Error("favorable contact applied in tap_to_play")
	}
	if s.Score() != 0 {
		t.Errorf("score = %d", s.Score())
	}

	s.PrimaryInput()
	tickFor(s, 2, 0.1)
	before := s.Energy()
	if before >= 1 {
		t.Fatalf("energy did not decay: %v", before)
	}
	if !s.FavorableContact() {
		t.Fatal("favorable contact ignored while playing")
	}
	if s.Score() != 1 || s.Energy() != 1 {
		t.Errorf("score=%d energy=%v, want 1 and 1", s.Score(), s.Energy())
	}
	if !rec.has("sound", SoundPowerup) || !rec.has("effect", EffectPulse) {
		t.Error("expected powerup sound and pulse effect")
	}

	s.CheckOutOfBounds(-100)
	if s.FavorableContact() {
		t.Error("favorable contact applied in game_over")
	}
	if s.Score() != 1 {
		t.Errorf("score changed in game_over: %d", s.Score())
	}
}

func TestGameOverIgnoresInputUntilTimer(t *testing.T) {
	rec := &recorder{}
	s := New(DefaultLivesConfig(), rec)
	s.PrimaryInput()
	s.FavorableContact()
	for range 3 {
		s.UnfavorableContact()
	}
	want := s.Snapshot()

	dt := 0.25
	for elapsed := dt; elapsed < 5; elapsed += dt {
		s.Tick(dt)
		if s.PrimaryInput() || s.FavorableContact() || s.UnfavorableContact() || s.CheckOutOfBounds(-100) {
			t.Fatalf("input accepted at %.2fs of game over", elapsed)
		}
		if s.State() != StateGameOver || s.Score() != want.Score || s.Lives() != want.Lives {
			t.Fatalf("state changed at %.2fs: %+v", elapsed, s.Snapshot())
		}
	}

	s.Tick(dt)
	if s.State() != StateTapToPlay {
		t.Fatalf("state = %v after 5s, want tap_to_play", s.State())
	}
	if s.PendingTimers() != 0 {
		t.Errorf("pending timers = %d", s.PendingTimers())
	}
	if !s.PrimaryInput() || s.State() != StatePlaying || s.Score() != 0 {
		t.Errorf("new run did not start fresh: %+v", s.Snapshot())
	}
}

func TestEnergyBumpDrain(t *testing.T) {
	cfg := DefaultEnergyConfig()
	cfg.BumpDrain = 0.25
	rec := &recorder{}
	s := New(cfg, rec)
	s.PrimaryInput()

	for i := 1; i <= 3; i++ {
		s.UnfavorableContact()
		if s.State() != StatePlaying {
			t.Fatalf("ended after %d bumps", i)
		}
	}
	if math.Abs(s.Energy()-0.25) > 1e-12 {
		t.Errorf("energy = %v, want 0.25", s.Energy())
	}
	if !rec.has("effect", EffectShake) || !rec.has("sound", SoundBump) {
		t.Error("expected bump sound and shake effect")
	}

	s.UnfavorableContact()
	if s.State() != StateGameOver || s.EndReason() != ReasonEnergyDrained {
		t.Errorf("state=%v reason=%v", s.State(), s.EndReason())
	}
}

func TestCheckOutOfBounds(t *testing.T) {
	tests := []struct {
		name string
		y    float64
		want bool
	}{
		{"above", 0, false},
		{"at threshold", -5, false},
		{"below", -5.01, true},
		{"nan", math.NaN(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(DefaultEnergyConfig(), nil)
			s.PrimaryInput()
			s.FavorableContact()

			if got := s.CheckOutOfBounds(tt.y); got != tt.want {
				t.Fatalf("CheckOutOfBounds(%v) = %v, want %v", tt.y, got, tt.want)
			}
			if tt.want {
				if s.EndReason() != ReasonFellOut {
					t.Errorf("reason = %v", s.EndReason())
				}
				if s.Score() != 1 || s.Energy() != 1 {
					t.Errorf("fall changed score/energy: %d %v", s.Score(), s.Energy())
				}
			}
		})
	}
}

func TestTickClampsBadDeltas(t *testing.T) {
	s := New(DefaultEnergyConfig(), nil)
	s.PrimaryInput()

	for _, dt := range []float64{-1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		s.Tick(dt)
	}
	if s.Energy() != 1 {
		t.Errorf("energy = %v, want 1", s.Energy())
	}
	if s.Clock() != 0 {
		t.Errorf("clock = %v, want 0", s.Clock())
	}
}

func TestTransitionHookSeesOnlyTableEdges(t *testing.T) {
	allowed := map[[2]State]bool{
		{StateTapToPlay, StatePlaying}:  true,
		{StatePlaying, StateGameOver}:   true,
		{StateGameOver, StateTapToPlay}: true,
	}

	var edges [][2]State
	s := New(DefaultLivesConfig(), nil, WithTransitionHook(func(from, to State) {
		edges = append(edges, [2]State{from, to})
	}))

	for round := 0; round < 3; round++ {
		s.PrimaryInput()
		s.PrimaryInput()
		for range 4 {
			s.FavorableContact()
			s.UnfavorableContact()
		}
		s.UnfavorableContact()
		s.UnfavorableContact()
		s.UnfavorableContact()
		tickFor(s, 6, 0.5)
	}

	if len(edges) != 9 {
		t.Fatalf("got %d transitions, want 9: %v", len(edges), edges)
	}
	for _, e := range edges {
		if !allowed[e] {
			t.Errorf("unexpected transition %v -> %v", e[0], e[1])
		}
	}
}

func TestResetCancelsCountdown(t *testing.T) {
	s := New(DefaultLivesConfig(), nil)
	s.PrimaryInput()
	for range 3 {
		s.UnfavorableContact()
	}
	if s.PendingTimers() != 1 {
		t.Fatalf("pending = %d, want 1", s.PendingTimers())
	}

	s.Reset()
	if s.State() != StateTapToPlay || s.PendingTimers() != 0 {
		t.Fatalf("after reset: %+v", s.Snapshot())
	}

	s.PrimaryInput()
	tickFor(s, 10, 0.5)
	if s.State() != StatePlaying {
		t.Errorf("stale countdown fired: state=%v", s.State())
	}
}

func TestHUDText(t *testing.T) {
	rec := &recorder{}
	s := New(DefaultEnergyConfig(), rec)
	s.PrimaryInput()
	s.FavorableContact()
	s.FavorableContact()
	s.Tick(2)

	if rec.score != "Score: 2" {
		t.Errorf("score text = %q", rec.score)
	}
	if rec.vitals != "Energy: 88%" {
		t.Errorf("vitals text = %q", rec.vitals)
	}

	lives := New(DefaultLivesConfig(), nil)
	lives.PrimaryInput()
	lives.UnfavorableContact()
	if got := lives.Vitals(); !strings.HasPrefix(got, "Lives: 2") {
		t.Errorf("vitals = %q", got)
	}
	if math.Abs(lives.Health()-2.0/3) > 1e-12 {
		t.Errorf("health = %v", lives.Health())
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		s := New(DefaultEnergyConfig(), nil)
		for i := 0; i < 2000; i++ {
			switch {
			case i%400 == 0:
				s.PrimaryInput()
			case i%97 == 0:
				s.FavorableContact()
			case i%13 == 0:
				s.UnfavorableContact()
			}
			s.Tick(1.0 / 60)
		}
		return s.Snapshot()
	}

	if a, b := run(), run(); a != b {
		t.Errorf("snapshots differ:\n%+v\n%+v", a, b)
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := Config{
		MaxLives:      -2,
		DecayRate:     math.NaN(),
		BumpDrain:     -1,
		GameOverDelay: -5,
		FallThreshold: math.NaN(),
	}.Validate()

	if cfg.MaxLives != 1 || cfg.DecayRate != 0 || cfg.BumpDrain != 0 ||
		cfg.GameOverDelay != 0 || cfg.FallThreshold != 0 {
		t.Errorf("Validate() = %+v", cfg)
	}
}

func TestSetDecayRate(t *testing.T) {
	s := New(DefaultEnergyConfig(), nil)
	s.PrimaryInput()

	s.SetDecayRate(0.5)
	tickFor(s, 1, 0.1)
	if math.Abs(s.Energy()-0.5) > 1e-9 {
		t.Fatalf("energy = %v, want 0.5", s.Energy())
	}

	s.SetDecayRate(-1)
	tickFor(s, 1, 0.1)
	if math.Abs(s.Energy()-0.5) > 1e-9 {
		t.Errorf("energy = %v after negative rate, want unchanged", s.Energy())
	}
	if s.Config().DecayRate != 0 {
		t.Errorf("DecayRate = %v, want 0", s.Config().DecayRate)
	}
}
