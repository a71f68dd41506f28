// Package tui provides the Bubble Tea integration for the skytype platform.
// It handles the terminal UI loop, input mapping, profile persistence and
// the menus around a game session.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// maxFrame caps the time a single tick may cover, so a stalled terminal
// does not fast-forward the game.
const maxFrame = 250 * time.Millisecond

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameTime returns the wall time between two ticks, clamped to maxFrame.
// The first tick of a session covers no time.
func frameTime(last, now time.Time) time.Duration {
	if last.IsZero() || now.Before(last) {
		return 0
	}
	return min(now.Sub(last), maxFrame)
}
