// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Loop identifies the
// tick chain that scheduled it, so ticks still in flight from a game the
// player has left are not picked up by the next one.
type TickMsg struct {
	Loop uint64
	Time time.Time
}

var loopSeq atomic.Uint64

// newLoopID returns an identifier for a new tick chain.
func newLoopID() uint64 {
	return loopSeq.Add(1)
}

// tickCmd returns a command that sends one tick for loop after 1/tickRate seconds.
func tickCmd(loop uint64, tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Loop: loop, Time: t}
	})
}
