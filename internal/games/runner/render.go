package runner

import (
	"fmt"
	"image/color"

	"github.com/vovakirdan/cyberrunner/internal/assets"
	"github.com/vovakirdan/cyberrunner/internal/core"
)

// Canvas is the drawing surface a frontend provides. Coordinates are in the
// fixed 800x600 window space; text y is the top of the glyph box.
type Canvas interface {
	Clear(c color.RGBA)
	DrawTexture(id assets.TextureID, src, dst core.Rect, origin core.Vec2, rotation float64, tint color.RGBA)
	DrawText(text string, x, y, size float64, c color.RGBA)
	MeasureText(text string, size float64) float64
}

// HUD colors and sizes.
var (
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red   = color.RGBA{R: 230, G: 41, B: 55, A: 255}
)

const (
	TextSize   = 40
	BannerSize = 80

	hintText    = "Use A, D and Space"
	deathText   = "You Died!"
	restartText = "Press space for new game"
	pausedText  = "PAUSED"
	hudMargin   = 10
)

// Draw renders the current frame back to front: backgrounds, avatar,
// drones, then text.
func (g *Game) Draw(c Canvas) {
	c.Clear(White)
	g.drawBackgrounds(c)
	g.drawPlayer(c)
	g.drawHazards(c)
	g.drawHUD(c)
}

func (g *Game) drawBackgrounds(c Canvas) {
	for _, l := range g.parallax.Layers() {
		size := g.sizes[l.Texture]
		src := core.NewRect(0, 0, float64(size.W), float64(size.H))
		for _, x := range [2]float64{l.Offset, l.Offset + l.Span} {
			c.DrawTexture(l.Texture, src, core.NewRect(x, 0, l.Span, l.Height), core.Vec2{}, 0, White)
		}
	}
}

func (g *Game) drawPlayer(c Canvas) {
	sheet := g.player.Sheet(g.phase)
	src := g.player.SheetSrc(float64(g.sizes[sheet].W))
	c.DrawTexture(sheet, src, g.player.Dst, g.player.Origin, g.player.Rotation, White)
}

// drawHazards draws every placed drone. While dead they stay where they froze.
func (g *Game) drawHazards(c Canvas) {
	sheetW := float64(g.sizes[assets.TexDrone].W)
	for _, h := range g.hazards.Slots() {
		if !h.Spawned() {
			continue
		}
		c.DrawTexture(assets.TexDrone, h.SheetSrc(sheetW), h.Dst, h.Origin, h.Rotation, White)
	}
}

func (g *Game) drawHUD(c Canvas) {
	score := fmt.Sprintf("Score: %d", g.scorer.Score())

	if g.phase == PhaseDead {
		drawCentered(c, score, core.WindowHeight/2-110, TextSize, White)
		drawCentered(c, deathText, core.WindowHeight/2-50, BannerSize, Red)
		drawCentered(c, restartText, core.WindowHeight/2+50, TextSize, White)
		return
	}

	c.DrawText(score, hudMargin, hudMargin, TextSize, White)
	if lvl := g.diff.Level(); lvl > 0 {
		c.DrawText(fmt.Sprintf("Level %d", lvl), hudMargin, hudMargin+TextSize+5, TextSize, White)
	}
	c.DrawText(hintText, core.WindowWidth-c.MeasureText(hintText, TextSize)-hudMargin, hudMargin, TextSize, White)

	if g.paused {
		drawCentered(c, pausedText, core.WindowHeight/2-BannerSize/2, BannerSize, White)
	}
}

// drawCentered draws text horizontally centered at row y.
func drawCentered(c Canvas, text string, y, size float64, col color.RGBA) {
	x := core.WindowWidth/2 - c.MeasureText(text, size)/2
	c.DrawText(text, x, y, size, col)
}
