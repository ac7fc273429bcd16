package tui

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/vovakirdan/cyberrunner/internal/assets"
	"github.com/vovakirdan/cyberrunner/internal/core"
)

func TestCanvasScale(t *testing.T) {
	screen := core.NewScreen(80, 30)
	c := NewCanvas(screen, nil)

	if c.sx != 0.1 || c.sy != 0.1 {
		t.Errorf("scale = %v x %v, want 0.1 x 0.1", c.sx, c.sy)
	}

	screen.Resize(160, 60)
	c.Resize()
	if c.sx != 0.2 || c.sy != 0.2 {
		t.Errorf("scale after resize = %v x %v, want 0.2 x 0.2", c.sx, c.sy)
	}
}

func TestCanvasSamplesTexture(t *testing.T) {
	// A 2x1 texture: left texel red, right texel fully transparent.
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})

	screen := core.NewScreen(80, 30)
	c := NewCanvas(screen, map[assets.TextureID]image.Image{assets.TexDrone: img})
	c.Clear(color.RGBA{A: 255})

	// 200x100 window px -> 20x10 terminal px at (10, 10).
	c.DrawTexture(assets.TexDrone, core.NewRect(0, 0, 2, 1), core.NewRect(100, 100, 200, 100), core.Vec2{}, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})

	red := core.ColorFromRGB(255, 0, 0)
	black := core.ColorFromRGB(0, 0, 0)

	// Pixel (12, 10) is the top half of cell (12, 5).
	if got := screen.GetCell(12, 5).Fg; got != red {
		t.Errorf("left half = %v, want red %v", got, red)
	}
	if got := screen.GetCell(25, 5).Fg; got != black {
		t.Errorf("transparent half = %v, want background %v", got, black)
	}
	if got := screen.GetCell(5, 5).Fg; got != black {
		t.Errorf("outside dst = %v, want background", got)
	}
}

func TestCanvasPlaceholders(t *testing.T) {
	screen := core.NewScreen(80, 30)
	c := NewCanvas(screen, nil)
	c.Clear(color.RGBA{R: 255, G: 255, B: 255, A: 255})

	c.DrawTexture(assets.TexWalk, core.NewRect(0, 0, 32, 28), core.NewRect(336, 488, 128, 112), core.Vec2{}, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})

	if got := screen.GetCell(40, 29).Bg; got != core.ColorCyan {
		t.Errorf("avatar placeholder = %v, want cyan", got)
	}
}

func TestCanvasText(t *testing.T) {
	screen := core.NewScreen(80, 30)
	c := NewCanvas(screen, nil)

	text := "You Died!"
	x := core.WindowWidth/2 - c.MeasureText(text, 80)/2
	c.DrawText(text, x, 250, 80, color.RGBA{R: 230, G: 41, B: 55, A: 255})

	// Glyph box centered at y=290 -> pixel row 29 -> cell row 14.
	row := []rune(screen.Row(14))
	if got := string(row[36 : 36+len(text)]); got != text {
		t.Errorf("row 14 columns 36.. = %q, want %q", got, text)
	}
	if strings.ContainsRune(string(row[:36]), 'Y') {
		t.Error("text starts before column 36")
	}
}
