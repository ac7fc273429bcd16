package headless

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/cyberrunner/internal/core"
)

// Script is a timed input sequence for a headless run.
//
//	events:
//	  - at: 0.5
//	    press: [jump]
//	  - at: 1.0
//	    for: 0.75
//	    hold: [right]
type Script struct {
	Events []ScriptEvent `yaml:"events"`
}

// ScriptEvent presses actions at one instant and/or holds them for a span.
type ScriptEvent struct {
	At    float64  `yaml:"at"`  // seconds from the start of the run
	For   float64  `yaml:"for"` // hold duration in seconds; 0 holds for one tick
	Press []string `yaml:"press"`
	Hold  []string `yaml:"hold"`

	press []core.Action
	hold  []core.Action
}

var actionNames = map[string]core.Action{
	"left":  core.ActionLeft,
	"right": core.ActionRight,
	"jump":  core.ActionJump,
	"pause": core.ActionPause,
	"quit":  core.ActionQuit,
}

// ParseAction maps a script action name to an action.
func ParseAction(name string) (core.Action, error) {
	a, ok := actionNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return core.ActionNone, fmt.Errorf("unknown action %q (valid: left, right, jump, pause, quit)", name)
	}
	return a, nil
}

// LoadScript reads and validates a YAML input script.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	s, err := ParseScript(data)
	if err != nil {
		return nil, fmt.Errorf("script %s: %w", path, err)
	}
	return s, nil
}

// ParseScript decodes and validates a YAML input script.
func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	var errs []error
	for i := range s.Events {
		ev := &s.Events[i]
		if ev.At < 0 || ev.For < 0 {
			errs = append(errs, fmt.Errorf("event %d: negative time", i))
		}
		for _, name := range ev.Press {
			a, err := ParseAction(name)
			if err != nil {
				errs = append(errs, fmt.Errorf("event %d: %w", i, err))
				continue
			}
			ev.press = append(ev.press, a)
		}
		for _, name := range ev.Hold {
			a, err := ParseAction(name)
			if err != nil {
				errs = append(errs, fmt.Errorf("event %d: %w", i, err))
				continue
			}
			ev.hold = append(ev.hold, a)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return &s, nil
}

// Input returns the scripted input for a tick.
func (s *Script) Input(tick int, dt float64) core.InputFrame {
	in := core.NewInputFrame()
	if s == nil {
		return in
	}
	for _, ev := range s.Events {
		start := int(math.Round(ev.At / dt))
		end := start + max(1, int(math.Round(ev.For/dt)))
		if tick == start {
			for _, a := range ev.press {
				in.Press(a)
			}
		}
		if tick >= start && tick < end {
			for _, a := range ev.hold {
				in.Hold(a)
			}
		}
	}
	return in
}
