// Package runner implements the CyberRunner simulation: an avatar running
// across a parallax city while drones fly in from the right.
//
// The package is pure logic. Frontends supply elapsed time, input and a
// random source, and draw through the Canvas interface.
package runner

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/cyberrunner/internal/assets"
	"github.com/vovakirdan/cyberrunner/internal/config"
	"github.com/vovakirdan/cyberrunner/internal/core"
)

// Phase is the run state.
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseDead
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	if p == PhaseDead {
		return "dead"
	}
	return "running"
}

// Game is one CyberRunner session. It owns every gameplay component and
// advances them in a fixed order each tick.
type Game struct {
	cfg   config.RunnerConfig
	sizes assets.Sizes

	spawn    Entity // immutable starting avatar, reused on every restart
	player   Player
	hazards  *HazardPool
	parallax *Parallax
	diff     *config.DifficultyManager
	scorer   Scorer

	phase   Phase
	paused  bool
	ticks   int
	elapsed float64 // simulated seconds this run
}

// New creates a game from tuning, texture sizes and a random source.
func New(cfg config.RunnerConfig, sizes assets.Sizes, rng core.RNG) (*Game, error) {
	if rng == nil {
		return nil, errors.New("runner: nil random source")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("runner: %w", err)
	}
	if err := sizes.Validate(); err != nil {
		return nil, fmt.Errorf("runner: %w", err)
	}
	if w := sizes[assets.TexWalk].W / cfg.Player.Frames; w <= 0 {
		return nil, fmt.Errorf("runner: %s is narrower than %d frames", assets.TexWalk.Path(), cfg.Player.Frames)
	}
	if w := sizes[assets.TexDrone].W / cfg.Hazards.Frames; w <= 0 {
		return nil, fmt.Errorf("runner: %s is narrower than %d frames", assets.TexDrone.Path(), cfg.Hazards.Frames)
	}

	g := &Game{
		cfg:      cfg,
		sizes:    sizes,
		spawn:    playerSpawn(cfg.Player, sizes[assets.TexWalk]),
		hazards:  NewHazardPool(cfg.Hazards, sizes[assets.TexDrone], rng),
		parallax: NewParallax(cfg.Parallax, sizes),
		diff:     config.NewDifficultyManager(cfg),
		scorer:   NewScorer(cfg.Score.Tick),
	}
	g.Reset()
	return g, nil
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return core.WindowTitle
}

// Reset starts a fresh session. Drone slots are emptied and fill on the
// first tick.
func (g *Game) Reset() {
	g.player = Player{Entity: g.spawn}
	g.hazards = NewHazardPool(g.cfg.Hazards, g.sizes[assets.TexDrone], g.hazards.rng)
	g.parallax.Reset()
	g.diff.Reset()
	g.scorer.Reset()
	g.phase = PhaseRunning
	g.paused = false
	g.ticks = 0
	g.elapsed = 0
}

// restart begins a new run after death: the avatar returns to its spawn,
// score and multipliers reset, and every drone slot is placed again.
// Parallax offsets carry over.
func (g *Game) restart() {
	g.player = Player{Entity: g.spawn}
	g.diff.Reset()
	g.scorer.Reset()
	g.hazards.RespawnAll(g.diff.HazardDistance(), g.diff.HazardSpeed())
	g.phase = PhaseRunning
	g.elapsed = 0
}

// Step advances the simulation by dt seconds.
func (g *Game) Step(dt float64, in core.InputFrame) core.StepResult {
	if in.JustPressed(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	var events []core.Event
	emit := func(kind core.EventKind) {
		events = append(events, core.Event{Kind: kind, Score: g.scorer.Score(), Level: g.diff.Level()})
	}

	g.hazards.Spawn(g.diff.HazardDistance(), g.diff.HazardSpeed())
	g.parallax.Update(dt, g.diff.BackgroundSpeed())
	g.player.ClampCeiling()

	// The clock runs while dead too, but only escalations felt in play are reported.
	if escalated := g.diff.Tick(dt); escalated && g.phase == PhaseRunning {
		emit(core.EventEscalated)
	}

	g.player.ApplyGravity(dt, g.cfg.Physics.Gravity)

	if g.scorer.Tick(dt, g.phase, g.diff) {
		emit(core.EventScored)
	}

	switch g.phase {
	case PhaseRunning:
		g.handleInput(in)
	case PhaseDead:
		if in.JustPressed(core.ActionJump) {
			g.restart()
			emit(core.EventRestarted)
		}
	}

	g.player.Integrate(dt)
	g.player.Animate(dt, g.phase == PhaseDead && !g.player.Airborne)

	if g.phase == PhaseRunning {
		g.hazards.Animate(dt)
		g.hazards.Advance(dt)
		g.elapsed += dt

		if anyCollision(g.hazards.Slots(), g.player.Dst, g.cfg.Collision.Pad) {
			g.phase = PhaseDead
			emit(core.EventDied)
		}
	}

	g.ticks++
	return core.StepResult{State: g.State(), Events: events}
}

// handleInput applies jump and walk input for a living avatar.
func (g *Game) handleInput(in core.InputFrame) {
	if in.JustPressed(core.ActionJump) {
		g.player.Jump(g.cfg.Physics.JumpImpulse)
	}
	speed := g.diff.PlayerSpeed()
	if in.IsHeld(core.ActionRight) {
		g.player.Walk(speed)
	}
	if in.IsHeld(core.ActionLeft) {
		g.player.Walk(-speed)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.scorer.Score(),
		GameOver: g.phase == PhaseDead,
		Paused:   g.paused,
		Level:    g.diff.Level(),
	}
}

// Phase returns whether the avatar is alive.
func (g *Game) Phase() Phase {
	return g.phase
}

// Player returns a copy of the avatar.
func (g *Game) Player() Player {
	return g.player
}

// Hazards returns the drone slots. Callers must not modify them.
func (g *Game) Hazards() []Hazard {
	return g.hazards.Slots()
}

// Layers returns the parallax layers farthest-first.
func (g *Game) Layers() []Layer {
	return g.parallax.Layers()
}

// Difficulty exposes the escalator for reporting.
func (g *Game) Difficulty() *config.DifficultyManager {
	return g.diff
}

// Config returns the tuning the game was built with.
func (g *Game) Config() config.RunnerConfig {
	return g.cfg
}

// Ticks returns the number of unpaused ticks since Reset.
func (g *Game) Ticks() int {
	return g.ticks
}

// RunTime returns simulated seconds survived in the current run.
func (g *Game) RunTime() float64 {
	return g.elapsed
}
