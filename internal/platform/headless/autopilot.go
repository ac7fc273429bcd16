package headless

import (
	"github.com/vovakirdan/cyberrunner/internal/core"
	"github.com/vovakirdan/cyberrunner/internal/games/runner"
)

// DefaultLead is how far ahead, in seconds of drone travel, the autopilot jumps.
const DefaultLead = 0.15

// Autopilot jumps over the nearest approaching drone.
type Autopilot struct {
	Lead float64 // seconds
}

// NewAutopilot creates an autopilot with the default lead.
func NewAutopilot() Autopilot {
	return Autopilot{Lead: DefaultLead}
}

// Input decides this tick's input from the game's current state.
func (a Autopilot) Input(g *runner.Game) core.InputFrame {
	in := core.NewInputFrame()
	if g.Phase() != runner.PhaseRunning {
		return in
	}
	p := g.Player()
	if p.Airborne {
		return in
	}

	hit := p.HitBox(g.Config().Collision.Pad)
	for _, h := range g.Hazards() {
		if h.State != runner.SlotActive {
			continue
		}
		gap := h.Dst.X - hit.Right()
		if gap >= 0 && gap <= h.Velocity*a.Lead {
			in.Press(core.ActionJump)
			break
		}
	}
	return in
}
