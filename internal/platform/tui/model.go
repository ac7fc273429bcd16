package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cyberrunner/internal/core"
	"github.com/vovakirdan/cyberrunner/internal/games/runner"
)

// Model is the Bubble Tea model for a CyberRunner session.
type Model struct {
	game     *runner.Game
	screen   *core.Screen
	canvas   *Canvas
	styles   styleCache
	keys     KeyMap
	help     help.Model
	holds    *Holds
	runtime  core.RuntimeConfig
	logger   *log.Logger
	lastTick time.Time
	state    core.GameState
	quitting bool
	now      func() time.Time
}

// NewModel creates a model drawing game into a width x height terminal.
// One row is kept for the help line.
func NewModel(game *runner.Game, canvas *Canvas, screen *core.Screen, cfg core.RuntimeConfig, logger *log.Logger) Model {
	h := help.New()
	h.ShowAll = false

	return Model{
		game:    game,
		screen:  screen,
		canvas:  canvas,
		styles:  styleCache{},
		keys:    DefaultKeyMap(),
		help:    h,
		holds:   NewHolds(DefaultHoldWindow),
		runtime: cfg,
		logger:  logger,
		state:   game.State(),
		now:     time.Now,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		m.logger.Info("quit", "score", m.state.Score, "level", m.state.Level, "ticks", m.game.Ticks())
		return m, tea.Quit
	}
	m.holds.Key(action, m.now())
	return m, nil
}

// handleResize processes window resize events. The game keeps running;
// only the scale changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(max(1, msg.Width), max(1, msg.Height-1))
	m.canvas.Resize()
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the simulation by the time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameTime(m.lastTick, now, m.runtime.TickSeconds())
	m.lastTick = now

	res := m.game.Step(dt, m.holds.Frame(now))
	m.state = res.State
	if res.State.GameOver {
		m.holds.Release()
	}
	logEvents(m.logger, res.Events)

	return m, tickCmd(m.runtime.TickRate)
}

// View renders the current frame and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Draw(m.canvas)
	return renderScreen(m.screen, m.styles) + "\n" + m.help.View(m.keys)
}

// State returns the last reported game state.
func (m Model) State() core.GameState {
	return m.state
}

func logEvents(logger *log.Logger, events []core.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case core.EventEscalated:
			logger.Info("difficulty escalated", "level", ev.Level, "score", ev.Score)
		case core.EventDied:
			logger.Info("player died", "score", ev.Score, "level", ev.Level)
		case core.EventRestarted:
			logger.Info("new run")
		case core.EventScored:
			logger.Debug("scored", "score", ev.Score)
		}
	}
}
