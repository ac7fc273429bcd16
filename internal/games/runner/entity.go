package runner

import (
	"math"

	"github.com/vovakirdan/cyberrunner/internal/core"
)

// Entity is the sprite record shared by the player and every hazard.
// Velocity is interpreted by the owner: vertical px/s for the player,
// leftward px/s for hazards.
type Entity struct {
	Src          core.Rect // current frame within the sprite sheet
	Dst          core.Rect // placement on screen, already scaled
	Origin       core.Vec2
	Rotation     float64 // degrees
	Velocity     float64
	Frame        int
	RunningTime  float64 // seconds since the last frame advance
	UpdatePeriod float64 // seconds per frame
	MaxFrame     int
}

// Animate advances the sprite-sheet cursor by dt seconds.
//
// The frame shown is selected before the cursor moves, so the cursor runs one
// past MaxFrame before it wraps to 0. With noRestart it stays there instead,
// freezing the sheet on its last frame.
func (e *Entity) Animate(dt float64, noRestart bool) {
	e.RunningTime += dt
	if !core.Reached(e.RunningTime, e.UpdatePeriod) {
		return
	}
	e.Src.X = float64(e.Frame) * e.Src.W
	if e.Frame <= e.MaxFrame {
		e.Frame++
	} else if !noRestart {
		e.Frame = 0
	}
	e.RunningTime = 0
}

// SheetSrc returns the source rect clamped to the last whole frame of a
// sheet sheetWidth pixels wide, so an over-advanced cursor never samples
// outside the texture.
func (e Entity) SheetSrc(sheetWidth float64) core.Rect {
	src := e.Src
	if src.W <= 0 {
		return src
	}
	last := math.Floor(sheetWidth/src.W) - 1
	if last < 0 {
		last = 0
	}
	if maxX := last * src.W; src.X > maxX {
		src.X = maxX
	}
	return src
}
