package tui

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/cyberrunner/internal/assets"
	"github.com/vovakirdan/cyberrunner/internal/config"
	"github.com/vovakirdan/cyberrunner/internal/core"
	"github.com/vovakirdan/cyberrunner/internal/games/runner"
	"github.com/vovakirdan/cyberrunner/internal/registry"
)

func init() {
	registry.Register("tui", func() registry.Frontend { return &Frontend{} })
}

// Frontend plays the game in the terminal.
type Frontend struct{}

// ID returns the frontend identifier.
func (f *Frontend) ID() string {
	return "tui"
}

// Title returns the display name.
func (f *Frontend) Title() string {
	return "Terminal (Bubble Tea)"
}

// Run plays until the user quits or ctx is cancelled.
func (f *Frontend) Run(ctx context.Context, opts registry.Options) error {
	logger, closeLog, err := openLogger(opts)
	if err != nil {
		return err
	}
	defer closeLog()

	textures, sizes, err := loadTextures(opts.AssetsDir, opts.Config, logger)
	if err != nil {
		return err
	}

	rt := opts.Runtime
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	game, err := runner.New(opts.Config, sizes, core.NewRand(rt.Seed))
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	screen := core.NewScreen(width, max(1, height-1))
	model := NewModel(game, NewCanvas(screen, textures), screen, rt, logger)

	logger.Info("starting", "seed", rt.Seed, "fps", rt.TickRate, "size", fmt.Sprintf("%dx%d", width, height))

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run terminal: %w", err)
	}
	if m, ok := final.(Model); ok {
		logger.Info("finished", "score", m.State().Score, "level", m.State().Level)
	}
	return nil
}

// openLogger sends the log to opts.LogFile: the alternate screen owns the terminal.
func openLogger(opts registry.Options) (*log.Logger, func(), error) {
	level := log.InfoLevel
	if opts.Logger != nil {
		level = opts.Logger.GetLevel()
	}
	if opts.LogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(opts.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "cyberrunner-tui",
		Level:           level,
	})
	return logger, func() { f.Close() }, nil
}

// loadTextures decodes every texture for pixel sampling. Without the
// texture pack the canvas draws placeholders at the configured sizes.
func loadTextures(root string, cfg config.RunnerConfig, logger *log.Logger) (map[assets.TextureID]image.Image, assets.Sizes, error) {
	set, err := assets.Load(root, assets.DecodeImage)
	switch {
	case err == nil:
		textures := make(map[assets.TextureID]image.Image)
		for _, id := range assets.All() {
			textures[id] = set.Get(id)
		}
		return textures, set.Sizes(), nil
	case errors.Is(err, assets.ErrMissing):
		logger.Warn("textures not found, drawing placeholders", "err", err)
		return nil, assets.SizesFromConfig(cfg.Sprites), nil
	default:
		return nil, nil, err
	}
}
