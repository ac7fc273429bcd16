package tui

import (
	"time"

	"github.com/vovakirdan/cyberrunner/internal/core"
)

// DefaultHoldWindow is how long a direction stays held after its last key
// event. It must outlast the terminal's initial key-repeat delay.
const DefaultHoldWindow = 550 * time.Millisecond

// Holds turns discrete terminal key events into the edge and level input
// the simulation expects.
type Holds struct {
	window  time.Duration
	until   map[core.Action]time.Time
	pending core.InputFrame
}

// NewHolds creates a tracker with the given hold window.
func NewHolds(window time.Duration) *Holds {
	return &Holds{
		window:  window,
		until:   make(map[core.Action]time.Time),
		pending: core.NewInputFrame(),
	}
}

// Key records a key event at now.
func (h *Holds) Key(a core.Action, now time.Time) {
	switch a {
	case core.ActionLeft:
		delete(h.until, core.ActionRight)
		h.until[a] = now.Add(h.window)
	case core.ActionRight:
		delete(h.until, core.ActionLeft)
		h.until[a] = now.Add(h.window)
	case core.ActionNone:
	default:
		// Repeats of a key already queued this tick stay one press.
		h.pending.Press(a)
	}
}

// Frame returns the input for a tick at now and clears pending presses.
func (h *Holds) Frame(now time.Time) core.InputFrame {
	in := h.pending.Clone()
	h.pending.Clear()
	for a, until := range h.until {
		if now.Before(until) {
			in.Hold(a)
		} else {
			delete(h.until, a)
		}
	}
	return in
}

// Release drops every held direction.
func (h *Holds) Release() {
	for a := range h.until {
		delete(h.until, a)
	}
}
