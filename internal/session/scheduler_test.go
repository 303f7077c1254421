package session

import (
	"math"
	"slices"
	"testing"
)

func TestSchedulerFiresInOrder(t *testing.T) {
	s := NewScheduler()
	var got []string
	s.After(2, func() { got = append(got, "b") })
	s.After(1, func() { got = append(got, "a") })
	s.After(2, func() { got = append(got, "c") })
	s.After(5, func() { got = append(got, "d") })

	if n := s.Advance(1.5); n != 1 {
		t.Fatalf("fired %d, want 1", n)
	}
	if n := s.Advance(1); n != 2 {
		t.Fatalf("fired %d, want 2", n)
	}
	if want := []string{"a", "b", "c"}; !slices.Equal(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
	if s.Pending() != 1 {
		t.Errorf("pending = %d, want 1", s.Pending())
	}
}

func TestSchedulerFiresOnce(t *testing.T) {
	s := NewScheduler()
	count := 0
	s.After(0.5, func() { count++ })
	for range 10 {
		s.Advance(0.5)
	}
	if count != 1 {
		t.Errorf("fired %d times, want 1", count)
	}
}

func TestSchedulerCancel(t *testing.T) {
	s := NewScheduler()
	fired := false
	id := s.After(1, func() { fired = true })

	if !s.Cancel(id) {
		t.Fatal("Cancel returned false for pending timer")
	}
	if s.Cancel(id) {
		t.Error("second Cancel returned true")
	}
	if s.Cancel(0) {
		t.Error("Cancel(0) returned true")
	}
	s.Advance(2)
	if fired {
		t.Error("cancelled timer fired")
	}
}

func TestSchedulerNestedTimersWait(t *testing.T) {
	s := NewScheduler()
	var got []int
	s.After(1, func() {
		got = append(got, 1)
		s.After(0, func() { got = append(got, 2) })
	})

	s.Advance(1)
	if !slices.Equal(got, []int{1}) {
		t.Fatalf("after first advance: %v", got)
	}
	s.Advance(0)
	if !slices.Equal(got, []int{1, 2}) {
		t.Errorf("after second advance: %v", got)
	}
}

func TestSchedulerCallbackCancelsLater(t *testing.T) {
	s := NewScheduler()
	var second TimerID
	fired := false
	s.After(1, func() { s.Cancel(second) })
	second = s.After(1, func() { fired = true })

	s.Advance(1)
	if fired {
		t.Error("timer cancelled by an earlier callback still fired")
	}
}

func TestSchedulerFrameDrift(t *testing.T) {
	s := NewScheduler()
	fired := false
	s.After(5, func() { fired = true })
	for range 299 {
		s.Advance(1.0 / 60)
	}
	if fired {
		t.Fatal("fired one frame early")
	}
	s.Advance(1.0 / 60)
	if !fired {
		t.Errorf("did not fire after 300 frames, clock %v", s.Now())
	}
}

func TestClampDelta(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0.016, 0.016},
		{0, 0},
		{-0.5, 0},
		{math.NaN(), 0},
		{math.Inf(1), 0},
		{math.Inf(-1), 0},
		{120, 120},
	}
	for _, tt := range tests {
		if got := ClampDelta(tt.in); got != tt.want {
			t.Errorf("ClampDelta(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSchedulerClear(t *testing.T) {
	s := NewScheduler()
	s.After(1, func() { t.Error("cleared timer fired") })
	s.After(2, func() { t.Error("cleared timer fired") })
	s.Clear()
	s.Advance(3)
	if s.Pending() != 0 {
		t.Errorf("pending = %d", s.Pending())
	}
}
