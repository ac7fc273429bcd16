package core

// Fixed window geometry. Resolution is not configurable.
const (
	WindowWidth  = 800
	WindowHeight = 600
	WindowTitle  = "CyberRunner"
)

// TimeEpsilon absorbs float drift when accumulated tick times are compared
// against a period, so sixty 1/60 s ticks reach one second.
const TimeEpsilon = 1e-9

// Reached reports whether an accumulated time has reached a period.
func Reached(elapsed, period float64) bool {
	return elapsed+TimeEpsilon >= period
}

// RuntimeConfig contains configuration passed to the simulation at initialization.
type RuntimeConfig struct {
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickSeconds returns the nominal duration of one tick.
func (c RuntimeConfig) TickSeconds() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// GameState represents the current state of a run.
// Returned by State() to communicate status to the platform.
type GameState struct {
	Score    int64 // Current score
	GameOver bool  // Whether the avatar is dead and waiting for restart
	Paused   bool  // Whether the game is paused
	Level    int   // Number of difficulty escalations this run
}

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventScored    EventKind = iota // Score accumulator paid out
	EventEscalated                  // Difficulty stepped up
	EventDied                       // Player collided with a hazard
	EventRestarted                  // A new run started
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventScored:
		return "scored"
	case EventEscalated:
		return "escalated"
	case EventDied:
		return "died"
	case EventRestarted:
		return "restarted"
	default:
		return "unknown"
	}
}

// Event is emitted by the simulation for the platform to log or react to.
type Event struct {
	Kind  EventKind
	Score int64
	Level int
}

// StepResult is returned by Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether an event of the given kind occurred this tick.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
