package headless

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/cyberrunner/internal/assets"
	"github.com/vovakirdan/cyberrunner/internal/config"
	"github.com/vovakirdan/cyberrunner/internal/core"
	"github.com/vovakirdan/cyberrunner/internal/games/runner"
	"github.com/vovakirdan/cyberrunner/internal/registry"
)

const dt = 1.0 / 60.0

func newGame(t *testing.T, seed int64) *runner.Game {
	t.Helper()
	cfg := config.DefaultRunnerConfig()
	g, err := runner.New(cfg, assets.SizesFromConfig(cfg.Sprites), core.NewRand(seed))
	if err != nil {
		t.Fatalf("runner.New() error: %v", err)
	}
	return g
}

func TestSimIdleDiesOnce(t *testing.T) {
	g := newGame(t, 3)
	r := Sim{DT: dt}.Run(context.Background(), g, 30*60)

	if r.Ticks != 1800 {
		t.Errorf("ticks = %d, want 1800", r.Ticks)
	}
	if r.Deaths != 1 || r.Restarts != 0 {
		t.Errorf("deaths = %d restarts = %d, want 1 and 0", r.Deaths, r.Restarts)
	}
	if g.Phase() != runner.PhaseDead {
		t.Error("idle player should end dead")
	}
	if r.Score != r.Best {
		t.Errorf("score %d differs from best %d without restarts", r.Score, r.Best)
	}
}

func TestSimDeadTimeEscalationsNotCounted(t *testing.T) {
	g := newGame(t, 3)
	r := Sim{DT: dt}.Run(context.Background(), g, 90*60)

	if r.Deaths != 1 {
		t.Fatalf("deaths = %d, want 1", r.Deaths)
	}
	if r.Escalations != 0 {
		t.Errorf("escalations = %d, want 0 while the player lies dead", r.Escalations)
	}
}

func TestReportEscalationTiming(t *testing.T) {
	g := newGame(t, 3)
	r := Sim{DT: dt}.Run(context.Background(), g, 30*60)

	if r.Period != 60 {
		t.Errorf("period = %v, want 60", r.Period)
	}
	if r.NextEscalation < 29.9 || r.NextEscalation > 30.1 {
		t.Errorf("next escalation in %v s, want about 30", r.NextEscalation)
	}

	var out bytes.Buffer
	r.Print(&out)
	for _, want := range []string{"Escalation period   60.00s", "Next escalation in  30.00s"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("report missing %q:\n%s", want, out.String())
		}
	}
}

func TestSimRestart(t *testing.T) {
	g := newGame(t, 3)
	r := Sim{DT: dt, Restart: true}.Run(context.Background(), g, 30*60)

	if r.Deaths < 2 {
		t.Errorf("deaths = %d, want several", r.Deaths)
	}
	if r.Restarts < r.Deaths-1 || r.Restarts > r.Deaths {
		t.Errorf("restarts = %d for %d deaths", r.Restarts, r.Deaths)
	}
}

func TestSimAutopilotOutlivesIdle(t *testing.T) {
	const ticks = 60 * 60
	idle := Sim{DT: dt, Restart: true}.Run(context.Background(), newGame(t, 11), ticks)

	ap := NewAutopilot()
	auto := Sim{DT: dt, Restart: true, Autopilot: &ap}.Run(context.Background(), newGame(t, 11), ticks)

	if auto.Deaths >= idle.Deaths {
		t.Errorf("autopilot died %d times, idle %d", auto.Deaths, idle.Deaths)
	}
	if auto.Best <= idle.Best {
		t.Errorf("autopilot best %d, idle best %d", auto.Best, idle.Best)
	}
}

func TestSimScriptedJumpAndQuit(t *testing.T) {
	s, err := ParseScript([]byte("events:\n  - at: 0\n    press: [jump]\n  - at: 0.5\n    press: [quit]\n"))
	if err != nil {
		t.Fatal(err)
	}
	g := newGame(t, 1)
	r := Sim{DT: dt, Script: s}.Run(context.Background(), g, 600)

	if r.Ticks != 30 {
		t.Errorf("ticks = %d, want 30", r.Ticks)
	}
	if !g.Player().Airborne {
		t.Error("scripted jump did not leave the ground")
	}
}

func TestSimDeterministic(t *testing.T) {
	ap := NewAutopilot()
	sim := Sim{DT: dt, Restart: true, Autopilot: &ap}
	r1 := sim.Run(context.Background(), newGame(t, 42), 3000)
	r2 := sim.Run(context.Background(), newGame(t, 42), 3000)
	if r1 != r2 {
		t.Errorf("reports differ:\n%+v\n%+v", r1, r2)
	}
}

func TestSimStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := Sim{DT: dt}.Run(ctx, newGame(t, 1), 100)
	if r.Ticks != 0 {
		t.Errorf("ticks = %d after cancel, want 0", r.Ticks)
	}
}

func TestFrontendRun(t *testing.T) {
	if !registry.Exists("headless") {
		t.Fatal("headless frontend not registered")
	}
	fe, err := registry.Create("headless")
	if err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	rt := core.DefaultConfig()
	rt.Seed = 5
	err = fe.Run(context.Background(), registry.Options{
		Config:    config.DefaultRunnerConfig(),
		Runtime:   rt,
		AssetsDir: t.TempDir(),
		Duration:  2 * time.Second,
		Autopilot: true,
		Out:       &out,
	})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	got := out.String()
	for _, want := range []string{"Simulation report", "Seed", "Ticks", "120", "Score rate"} {
		if !strings.Contains(got, want) {
			t.Errorf("report missing %q:\n%s", want, got)
		}
	}
}

func TestFrontendRunBadScript(t *testing.T) {
	fe := &Frontend{}
	err := fe.Run(context.Background(), registry.Options{
		Config:     config.DefaultRunnerConfig(),
		Runtime:    core.DefaultConfig(),
		AssetsDir:  t.TempDir(),
		ScriptPath: "does-not-exist.yaml",
		Out:        &bytes.Buffer{},
	})
	if err == nil {
		t.Error("expected error for missing script")
	}
}
