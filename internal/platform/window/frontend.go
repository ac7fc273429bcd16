// Package window plays CyberRunner in a desktop window with Ebitengine.
package window

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/vovakirdan/cyberrunner/internal/assets"
	"github.com/vovakirdan/cyberrunner/internal/core"
	"github.com/vovakirdan/cyberrunner/internal/games/runner"
	"github.com/vovakirdan/cyberrunner/internal/registry"
)

func init() {
	registry.Register("window", func() registry.Frontend { return &Frontend{} })
}

// Frontend plays the game in an 800x600 window.
type Frontend struct{}

// ID returns the frontend identifier.
func (f *Frontend) ID() string {
	return "window"
}

// Title returns the display name.
func (f *Frontend) Title() string {
	return "Window (Ebitengine)"
}

// Run opens the window and plays until it is closed, Esc is pressed or
// ctx is cancelled. Every texture must be present.
func (f *Frontend) Run(ctx context.Context, opts registry.Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	textures, err := assets.Load(opts.AssetsDir, loadImage)
	if err != nil {
		return fmt.Errorf("window: %w", err)
	}
	defer textures.Release(func(id assets.TextureID, img *ebiten.Image) {
		img.Deallocate()
		logger.Debug("texture released", "id", id)
	})

	rt := opts.Runtime
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	game, err := runner.New(opts.Config, textures.Sizes(), core.NewRand(rt.Seed))
	if err != nil {
		return err
	}

	tps := rt.TickRate
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	ebiten.SetWindowSize(core.WindowWidth, core.WindowHeight)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetTPS(tps)

	logger.Info("starting", "seed", rt.Seed, "tps", tps, "assets", opts.AssetsDir)

	h := newHost(ctx, game, NewCanvas(textures), logger)
	if err := ebiten.RunGame(h); err != nil {
		return fmt.Errorf("window: %w", err)
	}

	logger.Info("window closed", "score", h.state.Score, "level", h.state.Level)
	return nil
}

// loadImage reads a PNG into a GPU texture.
func loadImage(path string) (*ebiten.Image, assets.Size, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, assets.Size{}, err
	}
	b := img.Bounds()
	return img, assets.Size{W: b.Dx(), H: b.Dy()}, nil
}
