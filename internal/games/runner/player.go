package runner

import (
	"github.com/vovakirdan/cyberrunner/internal/assets"
	"github.com/vovakirdan/cyberrunner/internal/config"
	"github.com/vovakirdan/cyberrunner/internal/core"
)

// Player is the avatar: one sprite entity plus whether it is off the ground.
type Player struct {
	Entity
	Airborne bool
}

// playerSpawn builds the avatar's starting entity: centered horizontally,
// standing on the ground line. Frames are cut from the run sheet; the jump
// and death sheets share its frame size.
func playerSpawn(cfg config.PlayerConfig, walk assets.Size) Entity {
	frameW := float64(walk.W / cfg.Frames)
	frameH := float64(walk.H)
	w := frameW * cfg.Scale
	h := frameH * cfg.Scale
	return Entity{
		Src:          core.NewRect(0, 0, frameW, frameH),
		Dst:          core.NewRect(core.WindowWidth/2-w/2, core.WindowHeight-h, w, h),
		UpdatePeriod: 1.0 / cfg.FrameRate,
		MaxFrame:     cfg.MaxFrame,
	}
}

// groundY is the y at which the avatar stands on the ground line.
func (p *Player) groundY() float64 {
	return core.WindowHeight - p.Dst.H
}

// maxX is the rightmost x the avatar may walk to.
func (p *Player) maxX() float64 {
	return core.WindowWidth - p.Dst.W/2
}

// ClampCeiling stops upward motion once the avatar reaches the top of the
// screen. Position is left alone; gravity brings it back down.
func (p *Player) ClampCeiling() {
	if p.Dst.Y <= 0 && p.Velocity < 0 {
		p.Velocity = 0
	}
}

// ApplyGravity snaps a grounded avatar to the ground line, or accelerates
// an airborne one downward.
func (p *Player) ApplyGravity(dt, gravity float64) {
	if p.Dst.Y >= p.groundY() {
		p.Dst.Y = p.groundY()
		p.Velocity = 0
		p.Airborne = false
		return
	}
	p.Velocity += gravity * dt
	p.Airborne = true
}

// Jump launches the avatar if it is on the ground. Returns whether it jumped.
func (p *Player) Jump(impulse float64) bool {
	if p.Airborne {
		return false
	}
	p.Velocity -= impulse
	return true
}

// Walk moves the avatar horizontally by dx, keeping it within
// [0, windowWidth - width/2]. Movement starts only from inside the bounds.
func (p *Player) Walk(dx float64) {
	switch {
	case dx > 0 && p.Dst.X < p.maxX():
		p.Dst.X = core.ClampF(p.Dst.X+dx, 0, p.maxX())
	case dx < 0 && p.Dst.X > 0:
		p.Dst.X = core.ClampF(p.Dst.X+dx, 0, p.maxX())
	}
}

// Integrate applies vertical velocity to position. A fall never carries the
// avatar below the ground line; the next gravity pass lands it.
func (p *Player) Integrate(dt float64) {
	p.Dst.Y += p.Velocity * dt
	if p.Dst.Y > p.groundY() {
		p.Dst.Y = p.groundY()
	}
}

// HitBox returns the shrunken rectangle used for collision.
func (p *Player) HitBox(pad float64) core.Rect {
	return p.Dst.Shrink(pad)
}

// Sheet selects the sprite sheet for the avatar's situation.
func (p *Player) Sheet(phase Phase) assets.TextureID {
	switch {
	case p.Airborne:
		return assets.TexJump
	case phase == PhaseDead:
		return assets.TexDeath
	default:
		return assets.TexWalk
	}
}
