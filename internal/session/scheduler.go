package session

import "math"

// TimerID identifies a scheduled callback. The zero value is never issued.
type TimerID uint64

// dueSlack lets a timer fire on the tick that reaches its deadline even when
// summed frame deltas land a rounding error short of it.
const dueSlack = 1e-9

type timer struct {
	id TimerID
	at float64
	fn func()
}

// Scheduler is a queue of one-shot callbacks fired by accumulated tick time.
// It never spawns goroutines: callbacks run inside Advance on the caller's
// goroutine, in order of fire time and then scheduling order.
type Scheduler struct {
	now    float64
	seq    TimerID
	timers []timer // sorted by (at, id)
}

// NewScheduler returns an empty scheduler at time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the scheduler clock in seconds.
func (s *Scheduler) Now() float64 {
	return s.now
}

// Pending returns the number of timers that have not fired or been cancelled.
func (s *Scheduler) Pending() int {
	return len(s.timers)
}

// After schedules fn to run once delay seconds of ticks from now.
// Negative or NaN delays are treated as zero.
func (s *Scheduler) After(delay float64, fn func()) TimerID {
	if math.IsNaN(delay) || delay < 0 {
		delay = 0
	}
	s.seq++
	t := timer{id: s.seq, at: s.now + delay, fn: fn}

	i := len(s.timers)
	for i > 0 && s.timers[i-1].at > t.at {
		i--
	}
	s.timers = append(s.timers, timer{})
	copy(s.timers[i+1:], s.timers[i:])
	s.timers[i] = t
	return t.id
}

// Cancel removes a pending timer. It reports whether the timer was pending.
func (s *Scheduler) Cancel(id TimerID) bool {
	if id == 0 {
		return false
	}
	for i, t := range s.timers {
		if t.id == id {
			s.timers = append(s.timers[:i], s.timers[i+1:]...)
			return true
		}
	}
	return false
}

// Advance moves the clock forward by dt seconds and runs every timer that
// became due. Timers scheduled by a running callback wait for a later
// Advance even when their delay is zero. It returns the number fired.
func (s *Scheduler) Advance(dt float64) int {
	s.now += ClampDelta(dt)
	limit := s.seq

	fired := 0
	for {
		i := s.nextDue(limit)
		if i < 0 {
			return fired
		}
		t := s.timers[i]
		s.timers = append(s.timers[:i], s.timers[i+1:]...)
		t.fn()
		fired++
	}
}

// Clear drops every pending timer without running it.
func (s *Scheduler) Clear() {
	s.timers = s.timers[:0]
}

func (s *Scheduler) nextDue(limit TimerID) int {
	for i, t := range s.timers {
		if t.at > s.now+dueSlack {
			return -1
		}
		if t.id <= limit {
			return i
		}
	}
	return -1
}

// ClampDelta maps a frame delta to a usable value: negative, NaN and
// infinite deltas become zero.
func ClampDelta(dt float64) float64 {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt < 0 {
		return 0
	}
	return dt
}
