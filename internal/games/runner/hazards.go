package runner

import (
	"github.com/vovakirdan/cyberrunner/internal/assets"
	"github.com/vovakirdan/cyberrunner/internal/config"
	"github.com/vovakirdan/cyberrunner/internal/core"
)

// SlotState tags a hazard slot.
type SlotState int

const (
	SlotEmpty  SlotState = iota // never spawned, or exited past the left edge
	SlotActive                  // flying leftward across the screen
)

// String returns a human-readable name for the slot state.
func (s SlotState) String() string {
	if s == SlotActive {
		return "active"
	}
	return "empty"
}

// Hazard is one drone slot.
type Hazard struct {
	State SlotState
	Entity
}

// Spawned reports whether the slot has ever been placed on screen.
func (h Hazard) Spawned() bool {
	return !h.Dst.Empty()
}

// HazardPool manages a fixed number of drone slots: respawning, moving and
// animating them.
type HazardPool struct {
	slots  []Hazard
	cfg    config.HazardConfig
	frameW float64
	frameH float64
	rng    core.RNG
}

// NewHazardPool creates a pool of empty slots for a drone sheet of the given size.
func NewHazardPool(cfg config.HazardConfig, sheet assets.Size, rng core.RNG) *HazardPool {
	return &HazardPool{
		slots:  make([]Hazard, cfg.Count),
		cfg:    cfg,
		frameW: float64(sheet.W / cfg.Frames),
		frameH: float64(sheet.H),
		rng:    rng,
	}
}

// Spawn respawns every slot that is empty or has reached the left edge.
// distanceMul scales the spawn stagger, speedMul the velocity.
func (p *HazardPool) Spawn(distanceMul, speedMul float64) {
	for i := range p.slots {
		if p.slots[i].State == SlotEmpty || p.slots[i].Dst.X <= 0 {
			p.respawn(i, distanceMul, speedMul)
		}
	}
}

// RespawnAll respawns every slot regardless of position.
func (p *HazardPool) RespawnAll(distanceMul, speedMul float64) {
	for i := range p.slots {
		p.respawn(i, distanceMul, speedMul)
	}
}

// respawn places slot i off the right edge. Later slots are staggered
// further right so drones never arrive stacked.
func (p *HazardPool) respawn(i int, distanceMul, speedMul float64) {
	offset := float64(p.rng.IntRange(p.cfg.MinOffset, p.cfg.MaxOffset))
	speed := float64(p.rng.IntRange(p.cfg.MinSpeed, p.cfg.MaxSpeed))
	w := p.frameW * p.cfg.Scale
	h := p.frameH * p.cfg.Scale

	p.slots[i] = Hazard{
		State: SlotActive,
		Entity: Entity{
			Src:          core.NewRect(0, 0, p.frameW, p.frameH),
			Dst:          core.NewRect(core.WindowWidth+float64(i)*offset*distanceMul, core.WindowHeight-h, w, h),
			Velocity:     speed * speedMul,
			UpdatePeriod: 1.0 / p.cfg.FrameRate,
			MaxFrame:     p.cfg.MaxFrame,
		},
	}
}

// Advance moves every active drone left. A drone already fully off screen
// wraps to the right edge; one that reaches the left edge empties its slot.
func (p *HazardPool) Advance(dt float64) {
	for i := range p.slots {
		h := &p.slots[i]
		if h.State != SlotActive {
			continue
		}
		if h.Dst.X <= -h.Dst.W {
			h.Dst.X = core.WindowWidth
		} else {
			h.Dst.X -= h.Velocity * dt
		}
		if h.Dst.X <= 0 {
			h.State = SlotEmpty
		}
	}
}

// Animate advances every spawned drone's sprite sheet.
func (p *HazardPool) Animate(dt float64) {
	for i := range p.slots {
		if p.slots[i].Spawned() {
			p.slots[i].Animate(dt, false)
		}
	}
}

// Slots returns the drone slots. Callers must not modify them.
func (p *HazardPool) Slots() []Hazard {
	return p.slots
}

// slot returns a pointer to slot i for direct placement.
func (p *HazardPool) slot(i int) *Hazard {
	return &p.slots[i]
}
