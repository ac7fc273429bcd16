package window

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/cyberrunner/internal/core"
	"github.com/vovakirdan/cyberrunner/internal/games/runner"
)

// binding maps a key to an action. Edge bindings fire once per key press;
// the others report the key as held every tick it is down.
type binding struct {
	key    ebiten.Key
	action core.Action
	edge   bool
}

var bindings = []binding{
	{ebiten.KeyA, core.ActionLeft, false},
	{ebiten.KeyD, core.ActionRight, false},
	{ebiten.KeySpace, core.ActionJump, true},
	{ebiten.KeyP, core.ActionPause, true},
	{ebiten.KeyEscape, core.ActionQuit, true},
}

// readInput polls the keyboard for this tick.
func readInput() core.InputFrame {
	in := core.NewInputFrame()
	for _, b := range bindings {
		switch {
		case b.edge && inpututil.IsKeyJustPressed(b.key):
			in.Press(b.action)
		case !b.edge && ebiten.IsKeyPressed(b.key):
			in.Hold(b.action)
		}
	}
	return in
}

// host implements ebiten.Game around a runner.Game.
type host struct {
	ctx    context.Context
	game   *runner.Game
	canvas *Canvas
	logger *log.Logger
	state  core.GameState
}

func newHost(ctx context.Context, game *runner.Game, canvas *Canvas, logger *log.Logger) *host {
	return &host{
		ctx:    ctx,
		game:   game,
		canvas: canvas,
		logger: logger,
		state:  game.State(),
	}
}

// Update advances the simulation by one tick.
func (h *host) Update() error {
	if h.ctx.Err() != nil {
		return ebiten.Termination
	}

	in := readInput()
	if in.JustPressed(core.ActionQuit) {
		return ebiten.Termination
	}

	res := h.game.Step(1/float64(ebiten.TPS()), in)
	h.state = res.State
	for _, ev := range res.Events {
		switch ev.Kind {
		case core.EventEscalated:
			h.logger.Info("difficulty escalated", "level", ev.Level, "score", ev.Score)
		case core.EventDied:
			h.logger.Info("player died", "score", ev.Score, "level", ev.Level)
		case core.EventRestarted:
			h.logger.Info("new run")
		}
	}
	return nil
}

// Draw renders the current frame.
func (h *host) Draw(screen *ebiten.Image) {
	h.canvas.SetTarget(screen)
	h.game.Draw(h.canvas)
}

// Layout keeps the logical screen at the fixed window size.
func (h *host) Layout(_, _ int) (int, int) {
	return core.WindowWidth, core.WindowHeight
}
