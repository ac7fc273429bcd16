package tui

import (
	"image"
	"image/color"
	"math"

	"github.com/vovakirdan/cyberrunner/internal/assets"
	"github.com/vovakirdan/cyberrunner/internal/core"
)

// Canvas draws the 800x600 game frame into a half-block Screen by
// nearest-neighbour sampling. Each terminal cell shows two pixels.
type Canvas struct {
	screen   *core.Screen
	textures map[assets.TextureID]image.Image
	sx, sy   float64 // terminal pixels per window pixel
}

// NewCanvas creates a canvas over screen. Textures without an image are
// drawn with built-in placeholder art.
func NewCanvas(screen *core.Screen, textures map[assets.TextureID]image.Image) *Canvas {
	c := &Canvas{screen: screen, textures: textures}
	c.Resize()
	return c
}

// Resize recomputes the scale after the screen changed size.
func (c *Canvas) Resize() {
	c.sx = float64(c.screen.Width()) / core.WindowWidth
	c.sy = float64(c.screen.PixelHeight()) / core.WindowHeight
}

// Clear fills the frame with one color.
func (c *Canvas) Clear(col color.RGBA) {
	c.screen.Fill(toColor(col))
}

// DrawTexture samples src into dst. Rotation is ignored; the game never rotates sprites.
func (c *Canvas) DrawTexture(id assets.TextureID, src, dst core.Rect, origin core.Vec2, _ float64, tint color.RGBA) {
	dst.X -= origin.X
	dst.Y -= origin.Y
	if dst.Empty() || src.Empty() {
		return
	}

	img := c.textures[id]
	x0 := max(0, int(math.Floor(dst.X*c.sx)))
	x1 := min(c.screen.Width(), int(math.Ceil(dst.Right()*c.sx)))
	y0 := max(0, int(math.Floor(dst.Y*c.sy)))
	y1 := min(c.screen.PixelHeight(), int(math.Ceil(dst.Bottom()*c.sy)))

	for py := y0; py < y1; py++ {
		v := ((float64(py)+0.5)/c.sy - dst.Y) / dst.H
		if v < 0 || v >= 1 {
			continue
		}
		ty := src.Y + v*src.H
		for px := x0; px < x1; px++ {
			u := ((float64(px)+0.5)/c.sx - dst.X) / dst.W
			if u < 0 || u >= 1 {
				continue
			}
			tx := src.X + u*src.W

			var col core.Color
			var ok bool
			if img != nil {
				col, ok = sample(img, tx, ty, tint)
			} else {
				col, ok = placeholder(id, tx, ty, src)
			}
			if ok {
				c.screen.SetPixel(px, py, col)
			}
		}
	}
}

// DrawText writes text in terminal cells. The terminal has one font size,
// so size only positions the text: it is centered on the glyph box's row.
func (c *Canvas) DrawText(text string, x, y, size float64, col color.RGBA) {
	row := int((y + size/2) * c.sy / 2)
	c.screen.DrawText(int(math.Round(x*c.sx)), row, text, toColor(col))
}

// MeasureText returns the width of text in window pixels.
func (c *Canvas) MeasureText(text string, _ float64) float64 {
	if c.sx == 0 {
		return 0
	}
	return float64(len([]rune(text))) / c.sx
}

// sample reads one texel. Mostly transparent texels are skipped.
func sample(img image.Image, tx, ty float64, tint color.RGBA) (core.Color, bool) {
	b := img.Bounds()
	x := b.Min.X + int(tx)
	y := b.Min.Y + int(ty)
	if x < b.Min.X || x >= b.Max.X || y < b.Min.Y || y >= b.Max.Y {
		return 0, false
	}
	r, g, bl, a := img.At(x, y).RGBA()
	if a < 0x8000 {
		return 0, false
	}
	// Undo premultiplication before quantizing.
	r = r * 0xffff / a
	g = g * 0xffff / a
	bl = bl * 0xffff / a
	return core.ColorFromRGB(
		uint8((r>>8)*uint32(tint.R)/255),
		uint8((g>>8)*uint32(tint.G)/255),
		uint8((bl>>8)*uint32(tint.B)/255),
	), true
}

// placeholder draws flat art for textures that were not loaded, so the
// terminal frontend runs without the texture pack.
func placeholder(id assets.TextureID, tx, ty float64, src core.Rect) (core.Color, bool) {
	switch id {
	case assets.TexWalk, assets.TexJump:
		return core.ColorCyan, true
	case assets.TexDeath:
		return core.ColorGray, true
	case assets.TexDrone:
		// A body with a lighter band across the middle.
		if v := (ty - src.Y) / src.H; v > 0.4 && v < 0.6 {
			return core.ColorOrange, true
		}
		return core.ColorRed, true
	case assets.TexBackground:
		return core.ColorFromRGB(20, 12, 48), true
	}

	// Nearer layers are skylines: one building per 16 texels with a
	// pseudo-random roof, taller and brighter toward the front.
	depth := int(id - assets.TexBackground)
	block := int(tx) / 16
	h := uint32(block)*2654435761 ^ uint32(depth)*40503
	roof := 0.35 + 0.1*float64(depth) + 0.25*float64(h%97)/97
	if (ty-src.Y)/src.H < 1-roof {
		return 0, false
	}
	shade := uint8(30 + 20*depth)
	return core.ColorFromRGB(shade/2, shade/3, shade), true
}

func toColor(c color.RGBA) core.Color {
	return core.ColorFromRGB(c.R, c.G, c.B)
}
