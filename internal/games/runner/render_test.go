package runner

import (
	"fmt"
	"image/color"
	"testing"

	"github.com/vovakirdan/cyberrunner/internal/assets"
	"github.com/vovakirdan/cyberrunner/internal/core"
)

type drawCall struct {
	kind string // "clear", "texture" or "text"
	tex  assets.TextureID
	src  core.Rect
	dst  core.Rect
	text string
	x, y float64
	size float64
	col  color.RGBA
}

// recordingCanvas records draw calls. Text is 0.5*size wide per rune.
type recordingCanvas struct {
	calls []drawCall
}

func (c *recordingCanvas) Clear(col color.RGBA) {
	c.calls = append(c.calls, drawCall{kind: "clear", col: col})
}

func (c *recordingCanvas) DrawTexture(id assets.TextureID, src, dst core.Rect, _ core.Vec2, _ float64, tint color.RGBA) {
	c.calls = append(c.calls, drawCall{kind: "texture", tex: id, src: src, dst: dst, col: tint})
}

func (c *recordingCanvas) DrawText(text string, x, y, size float64, col color.RGBA) {
	c.calls = append(c.calls, drawCall{kind: "text", text: text, x: x, y: y, size: size, col: col})
}

func (c *recordingCanvas) MeasureText(text string, size float64) float64 {
	return float64(len([]rune(text))) * size / 2
}

func (c *recordingCanvas) textures() []drawCall {
	var out []drawCall
	for _, call := range c.calls {
		if call.kind == "texture" {
			out = append(out, call)
		}
	}
	return out
}

func (c *recordingCanvas) text(s string) (drawCall, bool) {
	for _, call := range c.calls {
		if call.kind == "text" && call.text == s {
			return call, true
		}
	}
	return drawCall{}, false
}

func TestDrawOrder(t *testing.T) {
	g := newTestGame(t, lowRNG{}, nil)
	g.Step(dt, core.NewInputFrame())

	c := &recordingCanvas{}
	g.Draw(c)

	if len(c.calls) == 0 || c.calls[0].kind != "clear" || c.calls[0].col != White {
		t.Fatal("frame does not start with a white clear")
	}

	tex := c.textures()
	// Two copies per background, the avatar, then three drones.
	if len(tex) != 2*5+1+3 {
		t.Fatalf("texture draws = %d, want 14", len(tex))
	}
	for i, l := range g.Layers() {
		for n := 0; n < 2; n++ {
			call := tex[2*i+n]
			if call.tex != l.Texture {
				t.Errorf("draw %d: texture %v, want %v", 2*i+n, call.tex, l.Texture)
			}
			if want := l.Offset + float64(n)*l.Span; call.dst.X != want {
				t.Errorf("layer %d copy %d: x = %v, want %v", i, n, call.dst.X, want)
			}
		}
	}
	if tex[10].tex != assets.TexWalk {
		t.Errorf("avatar drawn with %v, want walk sheet", tex[10].tex)
	}
	for _, call := range tex[11:] {
		if call.tex != assets.TexDrone {
			t.Errorf("expected drone, got %v", call.tex)
		}
	}

	last := c.calls[len(c.calls)-1]
	if last.kind != "text" {
		t.Error("HUD text is not drawn last")
	}
}

func TestDrawHUD(t *testing.T) {
	g := newTestGame(t, lowRNG{}, nil)
	c := &recordingCanvas{}
	g.Draw(c)

	score, ok := c.text("Score: 0")
	if !ok {
		t.Fatal("score not drawn")
	}
	if score.x != 10 || score.y != 10 || score.size != TextSize {
		t.Errorf("score at (%v, %v) size %v", score.x, score.y, score.size)
	}

	hint, ok := c.text(hintText)
	if !ok {
		t.Fatal("hint not drawn")
	}
	if want := 800 - c.MeasureText(hintText, TextSize) - 10; hint.x != want {
		t.Errorf("hint x = %v, want %v", hint.x, want)
	}

	if _, ok := c.text(deathText); ok {
		t.Error("death banner drawn while running")
	}
	if _, ok := c.text("Level 1"); ok {
		t.Error("level shown before any escalation")
	}

	g.diff.Escalate()
	c = &recordingCanvas{}
	g.Draw(c)
	if _, ok := c.text("Level 1"); !ok {
		t.Error("level not shown after escalation")
	}
}

func TestDrawDeadOverlay(t *testing.T) {
	g := newTestGame(t, lowRNG{}, nil)
	killPlayer(t, g)
	g.scorer.score = 1200

	c := &recordingCanvas{}
	g.Draw(c)

	tests := []struct {
		text string
		y    float64
		size float64
		col  color.RGBA
	}{
		{fmt.Sprintf("Score: %d", 1200), 190, TextSize, White},
		{deathText, 250, BannerSize, Red},
		{restartText, 350, TextSize, White},
	}
	for _, tt := range tests {
		call, ok := c.text(tt.text)
		if !ok {
			t.Errorf("%q not drawn", tt.text)
			continue
		}
		wantX := 400 - c.MeasureText(tt.text, tt.size)/2
		if call.x != wantX || call.y != tt.y || call.size != tt.size || call.col != tt.col {
			t.Errorf("%q drawn at (%v, %v) size %v color %v", tt.text, call.x, call.y, call.size, call.col)
		}
	}
	if _, ok := c.text(hintText); ok {
		t.Error("hint drawn while dead")
	}

	drones := 0
	for _, call := range c.textures() {
		if call.tex == assets.TexDrone {
			drones++
		}
	}
	if drones != 3 {
		t.Errorf("drawn drones = %d, want 3 frozen drones", drones)
	}
}

func TestDrawDeathFrameStaysOnSheet(t *testing.T) {
	g := newTestGame(t, lowRNG{}, nil)
	killPlayer(t, g)
	for i := 0; i < 300; i++ {
		g.Step(dt, core.NewInputFrame())
	}

	c := &recordingCanvas{}
	g.Draw(c)

	for _, call := range c.textures() {
		if call.tex != assets.TexDeath {
			continue
		}
		// 192 px sheet, 32 px frames.
		if call.src.X > 160 {
			t.Errorf("death frame samples x = %v past the sheet", call.src.X)
		}
		return
	}
	t.Error("death sheet not drawn")
}

func TestDrawPaused(t *testing.T) {
	g := newTestGame(t, lowRNG{}, nil)
	g.Step(dt, pressed(core.ActionPause))

	c := &recordingCanvas{}
	g.Draw(c)
	if _, ok := c.text(pausedText); !ok {
		t.Error("paused overlay not drawn")
	}
}
