// Package headless runs the simulation without a display: fixed time step,
// seeded randomness, scripted or automatic input, and a report at the end.
package headless

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cyberrunner/internal/assets"
	"github.com/vovakirdan/cyberrunner/internal/config"
	"github.com/vovakirdan/cyberrunner/internal/core"
	"github.com/vovakirdan/cyberrunner/internal/games/runner"
	"github.com/vovakirdan/cyberrunner/internal/registry"
)

// DefaultDuration is the simulated time when none is given.
const DefaultDuration = 60 * time.Second

func init() {
	registry.Register("headless", func() registry.Frontend { return &Frontend{} })
}

// Frontend is the registry entry for headless runs.
type Frontend struct{}

// ID returns the frontend identifier.
func (f *Frontend) ID() string {
	return "headless"
}

// Title returns the display name.
func (f *Frontend) Title() string {
	return "Headless simulation"
}

// Run simulates opts.Duration of play and prints a report to opts.Out.
// Cancelling ctx stops early; the partial report is still printed.
func (f *Frontend) Run(ctx context.Context, opts registry.Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	seed := opts.Runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	sizes, err := textureSizes(opts.AssetsDir, opts.Config, logger)
	if err != nil {
		return err
	}
	game, err := runner.New(opts.Config, sizes, core.NewRand(seed))
	if err != nil {
		return err
	}

	sim := Sim{
		DT:      opts.Runtime.TickSeconds(),
		Restart: opts.Restart,
		Logger:  logger,
	}
	if opts.ScriptPath != "" {
		script, err := LoadScript(opts.ScriptPath)
		if err != nil {
			return err
		}
		sim.Script = script
	}
	if opts.Autopilot {
		ap := NewAutopilot()
		sim.Autopilot = &ap
	}

	duration := opts.Duration
	if duration <= 0 {
		duration = DefaultDuration
	}
	ticks := int(math.Round(duration.Seconds() / sim.DT))

	logger.Info("simulating", "seed", seed, "ticks", ticks, "dt", sim.DT,
		"autopilot", opts.Autopilot, "escalation", game.Difficulty().IsEnabled())
	report := sim.Run(ctx, game, ticks)
	report.Seed = seed
	report.Print(out)

	if errors.Is(ctx.Err(), context.Canceled) {
		logger.Warn("simulation interrupted", "ticks", report.Ticks)
	}
	return nil
}

// textureSizes reads texture headers under root, falling back to the
// configured sprite sizes when the textures are not installed.
func textureSizes(root string, cfg config.RunnerConfig, logger *log.Logger) (assets.Sizes, error) {
	sizes, err := assets.ProbeSizes(root)
	switch {
	case err == nil:
		return sizes, nil
	case errors.Is(err, assets.ErrMissing):
		logger.Debug("textures not found, using configured sprite sizes", "err", err)
		return assets.SizesFromConfig(cfg.Sprites), nil
	default:
		return nil, fmt.Errorf("probe textures: %w", err)
	}
}

// Sim drives a game at a fixed time step.
type Sim struct {
	DT        float64
	Script    *Script
	Autopilot *Autopilot
	Restart   bool // start a new run immediately after each death
	Logger    *log.Logger
}

// Run steps the game up to ticks times and reports what happened.
// A scripted quit or a cancelled ctx ends the run early.
func (s Sim) Run(ctx context.Context, g *runner.Game, ticks int) Report {
	logger := s.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	var r Report
	for tick := 0; tick < ticks; tick++ {
		if ctx.Err() != nil {
			break
		}

		in := s.Script.Input(tick, s.DT)
		if in.JustPressed(core.ActionQuit) {
			logger.Debug("scripted quit", "tick", tick)
			break
		}
		if s.Autopilot != nil {
			for a := range s.Autopilot.Input(g).Pressed {
				in.Press(a)
			}
		}
		if s.Restart && g.Phase() == runner.PhaseDead {
			in.Press(core.ActionJump)
		}

		res := g.Step(s.DT, in)
		r.Ticks++
		r.Seconds += s.DT
		r.Best = max(r.Best, res.State.Score)

		for _, ev := range res.Events {
			switch ev.Kind {
			case core.EventEscalated:
				r.Escalations++
				logger.Debug("difficulty escalated", "tick", tick, "level", ev.Level, "score", ev.Score)
			case core.EventDied:
				r.Deaths++
				logger.Debug("player died", "tick", tick, "score", ev.Score, "level", ev.Level)
			case core.EventRestarted:
				r.Restarts++
				logger.Debug("new run", "tick", tick)
			}
		}
	}
	r.finish(g)
	return r
}
