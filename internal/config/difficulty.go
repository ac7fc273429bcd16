package config

import (
	"math"

	"github.com/vovakirdan/cyberrunner/internal/core"
)

// DifficultyManager ratchets gameplay multipliers up at growing intervals.
// Every escalation speeds hazards and backgrounds up and multiplies the score
// rate; while the hazard distance multiplier is above its floor it also
// tightens hazard spacing and speeds the player up.
//
// Multipliers are derived from escalation counts rather than accumulated,
// so K escalations always give exactly 1 + step*K.
type DifficultyManager struct {
	cfg             DifficultyConfig
	basePlayerSpeed float64
	playerSpeedStep float64
	baseScoreRate   int64
	maxScoreRate    int64

	elapsed   float64 // seconds since the last escalation
	period    float64 // seconds until the next escalation
	level     int     // escalations this run
	tightened int     // escalations that also reduced hazard distance
	scoreRate int64
}

// NewDifficultyManager creates a difficulty manager at level zero.
func NewDifficultyManager(cfg RunnerConfig) *DifficultyManager {
	d := &DifficultyManager{
		cfg:             cfg.Difficulty,
		basePlayerSpeed: cfg.Player.Speed,
		playerSpeedStep: cfg.Player.SpeedIncrement,
		baseScoreRate:   cfg.Score.Rate,
		maxScoreRate:    cfg.Score.MaxRate,
		period:          cfg.Difficulty.Period,
	}
	d.Reset()
	return d
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// Tick advances the escalation clock by dt seconds.
// Returns true if an escalation happened during this tick.
func (d *DifficultyManager) Tick(dt float64) bool {
	if !d.cfg.Enabled {
		return false
	}
	d.elapsed += dt
	if !core.Reached(d.elapsed, d.period) {
		return false
	}
	d.Escalate()
	return true
}

// Escalate applies one escalation immediately.
func (d *DifficultyManager) Escalate() {
	if d.canTighten() {
		d.tightened++
	}
	d.level++
	d.scoreRate = d.multiplyScoreRate(d.scoreRate)
	d.period += d.period * d.cfg.PeriodGrowth
	d.elapsed = 0
}

// canTighten reports whether hazard distance is still above its floor.
func (d *DifficultyManager) canTighten() bool {
	return d.rawDistance(d.tightened) > d.cfg.HazardDistanceFloor+core.TimeEpsilon
}

func (d *DifficultyManager) rawDistance(steps int) float64 {
	return 1.0 - d.cfg.HazardDistanceStep*float64(steps)
}

// multiplyScoreRate scales a rate by the score multiplier, saturating at the cap.
func (d *DifficultyManager) multiplyScoreRate(rate int64) int64 {
	m := d.cfg.ScoreMultiplier
	if m <= 1 {
		return rate
	}
	if rate > d.maxScoreRate/m {
		return d.maxScoreRate
	}
	return rate * m
}

// Reset returns every multiplier to its starting value for a new run.
// The escalation period is restored only when configured to.
func (d *DifficultyManager) Reset() {
	d.elapsed = 0
	d.level = 0
	d.tightened = 0
	d.scoreRate = d.baseScoreRate
	if d.cfg.ResetPeriodOnRestart || d.period <= 0 {
		d.period = d.cfg.Period
	}
}

// ResetScoreRate restores the base score rate without touching other multipliers.
func (d *DifficultyManager) ResetScoreRate() {
	d.scoreRate = d.baseScoreRate
}

// Level returns the number of escalations this run.
func (d *DifficultyManager) Level() int {
	return d.level
}

// Elapsed returns seconds since the last escalation.
func (d *DifficultyManager) Elapsed() float64 {
	return d.elapsed
}

// Period returns the current escalation interval in seconds.
func (d *DifficultyManager) Period() float64 {
	return d.period
}

// HazardSpeed returns the hazard velocity multiplier.
func (d *DifficultyManager) HazardSpeed() float64 {
	return 1.0 + d.cfg.HazardSpeedStep*float64(d.level)
}

// HazardDistance returns the hazard spawn stagger multiplier, never below the floor.
func (d *DifficultyManager) HazardDistance() float64 {
	return math.Max(d.cfg.HazardDistanceFloor, d.rawDistance(d.tightened))
}

// BackgroundSpeed returns the parallax speed multiplier.
func (d *DifficultyManager) BackgroundSpeed() float64 {
	return 1.0 + d.cfg.BackgroundSpeedStep*float64(d.level)
}

// PlayerSpeed returns the player's horizontal speed in pixels per tick.
func (d *DifficultyManager) PlayerSpeed() float64 {
	return d.basePlayerSpeed + d.playerSpeedStep*float64(d.tightened)
}

// ScoreRate returns the points paid per score tick.
func (d *DifficultyManager) ScoreRate() int64 {
	return d.scoreRate
}
