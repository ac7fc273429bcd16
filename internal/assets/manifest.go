// Package assets describes the texture files CyberRunner needs and loads them.
package assets

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/vovakirdan/cyberrunner/internal/config"
)

// TextureID names a texture the game draws.
type TextureID int

const (
	TexWalk TextureID = iota
	TexJump
	TexDeath
	TexDrone
	TexBackground // farthest parallax layer
	TexLayer1
	TexLayer2
	TexLayer3
	TexLayer4 // nearest parallax layer
	textureCount
)

// Backgrounds lists the parallax textures farthest-first.
var Backgrounds = []TextureID{TexBackground, TexLayer1, TexLayer2, TexLayer3, TexLayer4}

// paths maps each texture to its file under the asset root.
var paths = [textureCount]string{
	TexWalk:       "textures/MC/walk.png",
	TexJump:       "textures/MC/jump.png",
	TexDeath:      "textures/MC/death.png",
	TexDrone:      "textures/Drone/roam.png",
	TexBackground: "textures/Backgrounds/bg.png",
	TexLayer1:     "textures/Backgrounds/b1.png",
	TexLayer2:     "textures/Backgrounds/b2.png",
	TexLayer3:     "textures/Backgrounds/b3.png",
	TexLayer4:     "textures/Backgrounds/b4.png",
}

// All returns every texture ID in load order.
func All() []TextureID {
	ids := make([]TextureID, 0, textureCount)
	for id := TextureID(0); id < textureCount; id++ {
		ids = append(ids, id)
	}
	return ids
}

// Path returns the texture's file path relative to the asset root.
func (id TextureID) Path() string {
	if id < 0 || id >= textureCount {
		return ""
	}
	return paths[id]
}

// String returns the texture's base file name.
func (id TextureID) String() string {
	if p := id.Path(); p != "" {
		return filepath.Base(p)
	}
	return fmt.Sprintf("texture(%d)", int(id))
}

// Size is a texture's pixel size.
type Size struct {
	W, H int
}

// Sizes holds the pixel size of every texture. The simulation only needs sizes.
type Sizes map[TextureID]Size

// Validate checks that every texture has a positive size.
func (s Sizes) Validate() error {
	var errs []error
	for _, id := range All() {
		sz, ok := s[id]
		if !ok {
			errs = append(errs, fmt.Errorf("%s: no size", id.Path()))
			continue
		}
		if sz.W <= 0 || sz.H <= 0 {
			errs = append(errs, fmt.Errorf("%s: invalid size %dx%d", id.Path(), sz.W, sz.H))
		}
	}
	return errors.Join(errs...)
}

// SizesFromConfig builds sizes from the config's sprite table, used when
// running without texture files. Missing background entries reuse the last one.
func SizesFromConfig(s config.SpriteSizes) Sizes {
	conv := func(sz config.SpriteSize) Size { return Size{W: sz.Width, H: sz.Height} }
	sizes := Sizes{
		TexWalk:  conv(s.Walk),
		TexJump:  conv(s.Jump),
		TexDeath: conv(s.Death),
		TexDrone: conv(s.Drone),
	}
	var last Size
	for i, id := range Backgrounds {
		if i < len(s.Backgrounds) {
			last = conv(s.Backgrounds[i])
		}
		sizes[id] = last
	}
	return sizes
}
