package runner

import (
	"github.com/vovakirdan/cyberrunner/internal/assets"
	"github.com/vovakirdan/cyberrunner/internal/config"
)

// Layer is one horizontally scrolling background.
type Layer struct {
	Texture   assets.TextureID
	BaseSpeed float64 // px/s before the background multiplier
	Offset    float64 // x of the first copy, in (-Span, 0]
	Span      float64 // scaled texture width; the wrap distance
	Height    float64 // scaled texture height
}

// Parallax scrolls the background layers, farthest first.
type Parallax struct {
	layers []Layer
}

// NewParallax builds one layer per configured speed, up to the number of
// background textures.
func NewParallax(cfg config.ParallaxConfig, sizes assets.Sizes) *Parallax {
	n := len(cfg.Speeds)
	if n > len(assets.Backgrounds) {
		n = len(assets.Backgrounds)
	}
	layers := make([]Layer, n)
	for i := range layers {
		id := assets.Backgrounds[i]
		size := sizes[id]
		layers[i] = Layer{
			Texture:   id,
			BaseSpeed: cfg.Speeds[i],
			Span:      float64(size.W) * cfg.Scale,
			Height:    float64(size.H) * cfg.Scale,
		}
	}
	return &Parallax{layers: layers}
}

// Update scrolls every layer left by its base speed times speedMul.
// A layer that has scrolled a full span snaps back to 0.
func (p *Parallax) Update(dt, speedMul float64) {
	for i := range p.layers {
		l := &p.layers[i]
		l.Offset -= l.BaseSpeed * dt * speedMul
		if l.Offset <= -l.Span {
			l.Offset = 0
		}
	}
}

// Reset puts every layer back at offset 0.
func (p *Parallax) Reset() {
	for i := range p.layers {
		p.layers[i].Offset = 0
	}
}

// Layers returns the layers farthest-first. Callers must not modify them.
func (p *Parallax) Layers() []Layer {
	return p.layers
}
