// Package tui plays CyberRunner in the terminal with Bubble Tea. Frames are
// drawn with half-block pixels in the 256-color palette.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cyberrunner/internal/core"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// maxFrameTime caps dt after a stall so the simulation never jumps far ahead.
const maxFrameTime = 100 * time.Millisecond

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameTime returns the seconds between two ticks, falling back to the
// nominal interval for the first tick and capping long stalls.
func frameTime(prev, now time.Time, nominal float64) float64 {
	if prev.IsZero() || !now.After(prev) {
		return nominal
	}
	d := now.Sub(prev)
	if d > maxFrameTime {
		d = maxFrameTime
	}
	return d.Seconds()
}
