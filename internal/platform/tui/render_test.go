package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/cyberrunner/internal/core"
)

func TestRenderScreenRows(t *testing.T) {
	s := core.NewScreen(10, 3)
	s.DrawText(2, 1, "hi", core.ColorWhite)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want 3", len(lines))
	}
	if !strings.Contains(lines[1], "hi") {
		t.Errorf("line 1 = %q, want it to contain text", lines[1])
	}
}

func TestStyleCacheReuses(t *testing.T) {
	cache := styleCache{}
	s := core.NewScreen(4, 2)
	s.SetPixel(0, 0, core.ColorRed)

	renderScreen(s, cache)
	if len(cache) != 2 {
		t.Errorf("cached styles = %d, want 2 color pairs", len(cache))
	}
	renderScreen(s, cache)
	if len(cache) != 2 {
		t.Errorf("second render grew the cache to %d", len(cache))
	}
}
