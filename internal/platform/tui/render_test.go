package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tilt-arcade/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColored(0, 0, "Score: 7", core.ColorYellow)
	s.SetCell(9, 1, '@', core.ColorDarkGray)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "Score: 7") {
		t.Errorf("line 0 = %q, want score text", lines[0])
	}
	if !strings.Contains(lines[1], "@") {
		t.Errorf("line 1 = %q, want ball glyph", lines[1])
	}
}

func TestColorStylesCoverPalette(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorDarkGray; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("color %d has no style", c)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "-"},
		{-3, "-"},
		{4.4, "0:04"},
		{59.6, "1:00"},
		{125, "2:05"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.in); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q, want %q", got, "  ab")
	}
	if got := centerText("toolong", 3); got != "toolong" {
		t.Errorf("centerText = %q, want unchanged", got)
	}
}
