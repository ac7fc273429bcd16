package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/cyberrunner/internal/core"
)

func TestHoldsWindow(t *testing.T) {
	start := time.Unix(1000, 0)
	h := NewHolds(500 * time.Millisecond)
	h.Key(core.ActionRight, start)

	tests := []struct {
		after time.Duration
		want  bool
	}{
		{0, true},
		{100 * time.Millisecond, true},
		{499 * time.Millisecond, true},
		{500 * time.Millisecond, false},
		{time.Second, false},
	}

	for _, tt := range tests {
		in := h.Frame(start.Add(tt.after))
		if got := in.IsHeld(core.ActionRight); got != tt.want {
			t.Errorf("after %v: held = %v, want %v", tt.after, got, tt.want)
		}
		if in.JustPressed(core.ActionRight) {
			t.Errorf("after %v: direction reported as a press", tt.after)
		}
	}
}

func TestHoldsRepeatExtends(t *testing.T) {
	start := time.Unix(1000, 0)
	h := NewHolds(500 * time.Millisecond)
	h.Key(core.ActionLeft, start)
	h.Key(core.ActionLeft, start.Add(400*time.Millisecond))

	if !h.Frame(start.Add(800 * time.Millisecond)).IsHeld(core.ActionLeft) {
		t.Error("key repeat did not extend the hold")
	}
}

func TestHoldsOppositeDirectionCancels(t *testing.T) {
	now := time.Unix(1000, 0)
	h := NewHolds(time.Second)
	h.Key(core.ActionLeft, now)
	h.Key(core.ActionRight, now)

	in := h.Frame(now)
	if in.IsHeld(core.ActionLeft) {
		t.Error("left still held after pressing right")
	}
	if !in.IsHeld(core.ActionRight) {
		t.Error("right not held")
	}
}

func TestHoldsPressesLastOneFrame(t *testing.T) {
	now := time.Unix(1000, 0)
	h := NewHolds(time.Second)
	h.Key(core.ActionJump, now)
	h.Key(core.ActionJump, now)

	if !h.Frame(now).JustPressed(core.ActionJump) {
		t.Fatal("jump not pressed")
	}
	if h.Frame(now).JustPressed(core.ActionJump) {
		t.Error("jump pressed on a second frame")
	}
}

func TestHoldsRelease(t *testing.T) {
	now := time.Unix(1000, 0)
	h := NewHolds(time.Second)
	h.Key(core.ActionRight, now)
	h.Release()
	if h.Frame(now).IsHeld(core.ActionRight) {
		t.Error("hold survived release")
	}
}
