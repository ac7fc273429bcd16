package window

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/bitmapfont/v3"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/vovakirdan/cyberrunner/internal/assets"
	"github.com/vovakirdan/cyberrunner/internal/core"
)

// Canvas draws the game frame onto an Ebitengine image.
type Canvas struct {
	target   *ebiten.Image
	textures *assets.Set[*ebiten.Image]
	face     *text.GoXFace
	glyphH   float64 // unscaled line height of face in pixels
}

// NewCanvas creates a canvas over loaded textures. Text uses the bitmap
// font scaled to the requested size.
func NewCanvas(textures *assets.Set[*ebiten.Image]) *Canvas {
	face := text.NewGoXFace(bitmapfont.Face)
	m := face.Metrics()
	return &Canvas{
		textures: textures,
		face:     face,
		glyphH:   m.HAscent + m.HDescent,
	}
}

// SetTarget selects the image the next frame is drawn to.
func (c *Canvas) SetTarget(img *ebiten.Image) {
	c.target = img
}

// Clear fills the frame with one color.
func (c *Canvas) Clear(col color.RGBA) {
	c.target.Fill(col)
}

// DrawTexture blits src of a texture into dst. origin is in dst space and
// rotation is in degrees around it.
func (c *Canvas) DrawTexture(id assets.TextureID, src, dst core.Rect, origin core.Vec2, rotation float64, tint color.RGBA) {
	if src.Empty() || dst.Empty() {
		return
	}
	img := c.textures.Get(id)
	if img == nil {
		return
	}
	sub, ok := img.SubImage(image.Rect(
		int(src.X), int(src.Y), int(src.Right()), int(src.Bottom()),
	)).(*ebiten.Image)
	if !ok {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(dst.W/src.W, dst.H/src.H)
	op.GeoM.Translate(-origin.X, -origin.Y)
	op.GeoM.Rotate(rotation * math.Pi / 180)
	op.GeoM.Translate(dst.X, dst.Y)
	op.ColorScale.ScaleWithColor(tint)
	op.Filter = ebiten.FilterNearest
	c.target.DrawImage(sub, op)
}

// DrawText draws text with its top-left corner at (x, y), size pixels tall.
func (c *Canvas) DrawText(s string, x, y, size float64, col color.RGBA) {
	scale := c.scale(size)
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(c.target, s, c.face, op)
}

// MeasureText returns the width of s at the given size.
func (c *Canvas) MeasureText(s string, size float64) float64 {
	return text.Advance(s, c.face) * c.scale(size)
}

func (c *Canvas) scale(size float64) float64 {
	if c.glyphH <= 0 {
		return 1
	}
	return size / c.glyphH
}
