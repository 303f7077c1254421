package fighter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tilt-arcade/internal/core"
	"github.com/vovakirdan/tilt-arcade/internal/session"
)

func newTestGame(t *testing.T, seed int64, cfgYAML string) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Cleanup(func() {
		SetConfigPath("")
		SetDifficultyPreset("")
	})
	if cfgYAML != "" {
		path := filepath.Join(t.TempDir(), "fighter.yaml")
		if err := os.WriteFile(path, []byte(cfgYAML), 0o600); err != nil {
			t.Fatal(err)
		}
		SetConfigPath(path)
	}

	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

func stepN(g *Game, n int, actions ...core.Action) {
	in := core.Input(actions...)
	for range n {
		g.Step(in)
	}
}

// placeAtCrosshair puts a motionless shape under the crosshair.
func placeAtCrosshair(g *Game, bad bool) {
	g.shapes = append(g.shapes, Shape{Kind: ShapeTorus, Bad: bad, Pos: g.crosshair()})
}

func TestShapeKinds(t *testing.T) {
	names := map[string]bool{}
	glyphs := map[rune]bool{}
	for k := ShapeBox; k < shapeKinds; k++ {
		names[k.String()] = true
		glyphs[k.Glyph()] = true
	}
	if len(names) != 8 || len(glyphs) != 8 {
		t.Errorf("want 8 distinct shapes, got %d names and %d glyphs", len(names), len(glyphs))
	}
	if ShapeKind(99).String() != "unknown" {
		t.Error("out-of-range kind should be unknown")
	}
}

func TestNoSpawnBeforeStart(t *testing.T) {
	g := newTestGame(t, 1, "")
	stepN(g, 300)
	if g.launched != 0 {
		t.Errorf("launched %d shapes before the run started", g.launched)
	}

	stepN(g, 1, core.ActionTap)
	stepN(g, 180)
	if g.launched == 0 {
		t.Error("no shapes launched while playing")
	}
}

func TestTapGoodShape(t *testing.T) {
	g := newTestGame(t, 1, "")
	stepN(g, 1, core.ActionTap)
	placeAtCrosshair(g, false)

	stepN(g, 1, core.ActionTap)
	if g.session.Score() != 1 {
		t.Errorf("score = %d, want 1", g.session.Score())
	}
	if g.session.Lives() != 3 {
		t.Errorf("lives = %d, want 3", g.session.Lives())
	}
	if len(g.bursts) != 1 {
		t.Errorf("bursts = %d, want 1", len(g.bursts))
	}
	if !g.fx.Pulsing() {
		t.Error("expected pulse effect")
	}
}

func TestTapBadShapes(t *testing.T) {
	g := newTestGame(t, 1, "")
	stepN(g, 1, core.ActionTap)

	for i := 1; i <= 3; i++ {
		placeAtCrosshair(g, true)
		stepN(g, 1, core.ActionTap)
		if g.session.Lives() != 3-i {
			t.Fatalf("after bad tap %d: lives = %d", i, g.session.Lives())
		}
	}
	st := g.State()
	if !st.GameOver || st.EndReason != "lives_exhausted" {
		t.Fatalf("state = %+v", st)
	}

	placeAtCrosshair(g, false)
	stepN(g, 1, core.ActionTap)
	if g.session.Score() != 0 {
		t.Error("tap scored during game over")
	}

	stepN(g, 5*60+1)
	if g.session.State() != session.StateTapToPlay {
		t.Fatalf("state = %v after countdown", g.session.State())
	}
	if len(g.shapes) != 0 {
		t.Errorf("shapes left on the title screen: %d", len(g.shapes))
	}
}

func TestTapMissesEmptySpace(t *testing.T) {
	g := newTestGame(t, 1, "spawn:\n  max_shapes: 0\n")
	stepN(g, 1, core.ActionTap)
	stepN(g, 10, core.ActionTap)
	if g.session.Score() != 0 || g.session.Lives() != 3 || len(g.bursts) != 0 {
		t.Errorf("tap on nothing changed state: %+v", g.Snapshot())
	}
}

func TestShapesStayOnScreenAndFallAway(t *testing.T) {
	g := newTestGame(t, 7, "")
	stepN(g, 1, core.ActionTap)
	h := float64(g.runtime.ScreenH)

	for range 60 * 20 {
		stepN(g, 1)
		for _, s := range g.shapes {
			if s.Pos.Y < hudRows {
				t.Fatalf("shape flew into the HUD: %+v", s)
			}
			if s.Vel.Y > 0 && s.Pos.Y > h+1 {
				t.Fatalf("fallen shape kept: %+v", s)
			}
		}
		if len(g.shapes) > g.cfg.Spawn.MaxShapes {
			t.Fatalf("%d shapes exceed the cap", len(g.shapes))
		}
	}
	if g.launched < 10 {
		t.Errorf("launched only %d shapes in 20s", g.launched)
	}
}

func TestBadRatio(t *testing.T) {
	tests := []struct {
		name  string
		ratio string
		bad   bool
	}{
		{"all good", "0", false},
		{"all bad", "1", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, 3, "spawn:\n  bad_ratio: "+tt.ratio+"\n")
			for range 50 {
				s := g.spawnShape(g.rng, 1)
				if s.Bad != tt.bad {
					t.Fatalf("shape bad = %v, want %v", s.Bad, tt.bad)
				}
				if s.Bad && s.Color != core.ColorBrightRed {
					t.Fatalf("bad shape color = %v", s.Color)
				}
			}
		})
	}
}

func TestCrosshairClamps(t *testing.T) {
	g := newTestGame(t, 1, "")
	stepN(g, 1, core.ActionTap)
	stepN(g, 100, core.ActionLeft, core.ActionUp)
	if g.crossX != 0 || g.crossY != hudRows {
		t.Errorf("crosshair = (%d,%d), want (0,%d)", g.crossX, g.crossY, hudRows)
	}
	stepN(g, 100, core.ActionRight, core.ActionDown)
	if g.crossX != 79 || g.crossY != 23 {
		t.Errorf("crosshair = (%d,%d), want (79,23)", g.crossX, g.crossY)
	}
}

func TestPresetLives(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	SetDifficultyPreset("easy")
	t.Cleanup(func() { SetDifficultyPreset("") })

	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	g.Step(core.Input(core.ActionTap))
	if g.session.Lives() != 5 {
		t.Errorf("easy lives = %d, want 5", g.session.Lives())
	}
}

func TestDeterminism(t *testing.T) {
	run := func(seed int64) Snapshot {
		g := newTestGame(t, seed, "")
		stepN(g, 1, core.ActionTap)
		for i := range 900 {
			switch i % 45 {
			case 0:
				stepN(g, 1, core.ActionLeft)
			case 20:
				stepN(g, 1, core.ActionTap)
			case 30:
				stepN(g, 1, core.ActionDown)
			default:
				stepN(g, 1)
			}
		}
		return g.Snapshot()
	}

	a, b := run(42), run(42)
	if a != b {
		t.Errorf("same seed, different snapshots:\n%+v\n%+v", a, b)
	}
	if c := run(43); a.Shapes > 0 && c == a {
		t.Error("different seeds produced identical shapes")
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, 1, "")
	g.SetBestScore(5)
	scr := core.NewScreen(80, 24)

	g.Render(scr)
	out := scr.String()
	for _, want := range []string{"-TAP TO PLAY-", "Geometry Fighter", "Best: 5"} {
		if !strings.Contains(out, want) {
			t.Errorf("title screen missing %q", want)
		}
	}

	stepN(g, 1, core.ActionTap)
	g.Render(scr)
	if got := scr.Get(g.crossX-1, g.crossY); got != '[' {
		t.Errorf("crosshair left bracket = %q", got)
	}
	if !strings.Contains(scr.Row(0), "Lives: 3") {
		t.Errorf("hud row = %q", scr.Row(0))
	}
}
